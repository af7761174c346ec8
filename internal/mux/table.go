package mux

import (
	"context"
	"errors"
	"net/http"

	"chiptable/pkg/action"
	"chiptable/pkg/holdem"
	"chiptable/pkg/room"

	"github.com/gorilla/mux"
)

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := mux.Vars(r)["uuid"]
		dealer, err := m.pitBoss.Dealer(uuid)
		if err != nil {
			writeTableError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxTableKey, dealer)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func dealerFromRequest(r *http.Request) *room.Dealer {
	return r.Context().Value(ctxTableKey).(*room.Dealer)
}

// execAndRespond runs fn and reads the state in the same run loop job
func execAndRespond(w http.ResponseWriter, r *http.Request, fn func(c *holdem.Controller) error) {
	var state *holdem.TableState
	err := dealerFromRequest(r).Exec(r.Context(), func(c *holdem.Controller) error {
		if err := fn(c); err != nil {
			return err
		}

		state = c.State()
		return nil
	})

	if err != nil {
		writeTableError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

type getTableResponse struct {
	Tables []string `json:"tables"`
}

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, getTableResponse{Tables: m.pitBoss.Tables()})
	}
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := m.defaults
		opts.PlayerNames = append([]string(nil), m.defaults.PlayerNames...)
		if !decodeRequest(w, r, &opts) {
			return
		}

		dealer, err := m.pitBoss.OpenTable(opts)
		if err != nil {
			writeTableError(w, err)
			return
		}

		state, err := dealer.State(r.Context())
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, state)
	}
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := dealerFromRequest(r).State(r.Context())
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) deleteTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.pitBoss.CloseTable(dealerFromRequest(r).ID()); err != nil {
			writeTableError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type postTableUUIDActionPayload struct {
	Seat   int    `json:"seat"`
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

func (m *Mux) postTableUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableUUIDActionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		act, err := action.FromString(pp.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		execAndRespond(w, r, func(c *holdem.Controller) error {
			return c.Dispatch(pp.Seat, act, pp.Amount)
		})
	}
}

func (m *Mux) postTableUUIDMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		execAndRespond(w, r, func(c *holdem.Controller) error {
			return c.InitiateNewMatch()
		})
	}
}

type postTableUUIDDealerPayload struct {
	Seat int `json:"seat"`
}

func (m *Mux) postTableUUIDDealer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableUUIDDealerPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		execAndRespond(w, r, func(c *holdem.Controller) error {
			return c.SetDealer(pp.Seat)
		})
	}
}

type postTableUUIDSitOutPayload struct {
	Seat   int  `json:"seat"`
	SitOut bool `json:"sitOut"`
}

func (m *Mux) postTableUUIDSitOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableUUIDSitOutPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		execAndRespond(w, r, func(c *holdem.Controller) error {
			return c.SitOut(pp.Seat, pp.SitOut)
		})
	}
}

type postTableUUIDPayoutPayload struct {
	// Tiers ranks the seats best first, ties share a tier
	Tiers [][]int `json:"tiers"`
	// Strengths maps a seat to its hand strength, higher wins
	Strengths map[int]int `json:"strengths"`
}

type postTableUUIDPayoutResponse struct {
	Payouts map[int]int        `json:"payouts"`
	State   *holdem.TableState `json:"state"`
}

var errPayoutPayload = errors.New("exactly one of tiers or strengths is required")

func (m *Mux) postTableUUIDPayout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableUUIDPayoutPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if (len(pp.Tiers) == 0) == (len(pp.Strengths) == 0) {
			writeJSONError(w, http.StatusBadRequest, errPayoutPayload)
			return
		}

		var resp postTableUUIDPayoutResponse
		err := dealerFromRequest(r).Exec(r.Context(), func(c *holdem.Controller) error {
			var err error
			if len(pp.Tiers) > 0 {
				resp.Payouts, err = c.PayWinners(pp.Tiers)
			} else {
				resp.Payouts, err = c.SettleByStrength(pp.Strengths)
			}

			if err != nil {
				return err
			}

			resp.State = c.State()
			return nil
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
