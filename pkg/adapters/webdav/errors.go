package webdav

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"os"

	"github.com/studio-b12/gowebdav"

	"github.com/aretw0/davnotes/pkg/core"
)

// statusOf extracts the HTTP status gowebdav attached to err.
func statusOf(err error) (int, bool) {
	var se gowebdav.StatusError
	if errors.As(err, &se) {
		return se.Status, true
	}
	var pe *os.PathError
	if errors.As(err, &pe) {
		if se, ok := pe.Err.(gowebdav.StatusError); ok {
			return se.Status, true
		}
	}
	return 0, false
}

// classify maps a gowebdav failure onto a core error kind.
func classify(op, p string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gowebdav.ErrAuthChanged) {
		return core.NewError(core.KindAuth, op, p, err)
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return core.NewError(core.KindConnection, op, p, err)
	}

	status, ok := statusOf(err)
	if !ok {
		return core.NewError(core.KindRemote, op, p, err)
	}
	switch status {
	case http.StatusNotFound:
		return core.NewError(core.KindNotFound, op, p, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return core.NewError(core.KindAuth, op, p, err)
	case http.StatusMethodNotAllowed:
		if op == "mkdir" {
			return core.NewError(core.KindExists, op, p, err)
		}
	case http.StatusPreconditionFailed:
		if op == "move" {
			return core.NewError(core.KindExists, op, p, err)
		}
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return core.NewError(core.KindConnection, op, p, err)
	}
	return core.NewError(core.KindRemote, op, p, err)
}
