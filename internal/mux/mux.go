package mux

import (
	"net/http"

	"chiptable/pkg/holdem"
	"chiptable/pkg/room"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxTableKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	pitBoss  *room.PitBoss
	defaults holdem.Options
}

// NewMux returns a new HTTP mux
// defaults are used for any table option missing from a create request
func NewMux(version string, pitBoss *room.PitBoss, defaults holdem.Options) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		pitBoss:  pitBoss,
		defaults: defaults,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
		r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())
	}

	{
		tr := this.Router.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		tr.Use(this.tableMiddleware)

		tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
		tr.Methods(http.MethodDelete).Path("").Handler(this.deleteTableUUID())
		tr.Methods(http.MethodPost).Path("/action").Handler(this.postTableUUIDAction())
		tr.Methods(http.MethodPost).Path("/match").Handler(this.postTableUUIDMatch())
		tr.Methods(http.MethodPost).Path("/dealer").Handler(this.postTableUUIDDealer())
		tr.Methods(http.MethodPost).Path("/sit-out").Handler(this.postTableUUIDSitOut())
		tr.Methods(http.MethodPost).Path("/payout").Handler(this.postTableUUIDPayout())
	}

	return this
}
