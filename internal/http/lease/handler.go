package lease

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
	"github.com/MrJamesThe3rd/leasedesk/internal/http/httpx"
	"github.com/MrJamesThe3rd/leasedesk/internal/lease"
)

type Handler struct {
	svc *lease.Service
}

func NewHandler(svc *lease.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/drafts", h.createDraft)
	r.Get("/drafts/{id}", h.getDraft)
	r.Get("/drafts/{id}/negotiations", h.listNegotiations)
	r.Get("/drafts/{id}/negotiations/active", h.activeNegotiation)
	r.Post("/drafts/{id}/finalize", h.finalize)
	r.Get("/drafts/{id}/lease", h.leaseForDraft)

	r.Post("/negotiations", h.openNegotiation)
	r.Patch("/negotiations/{id}", h.respond)
	r.Get("/negotiations/{id}/chain", h.chain)

	r.Get("/leases/{id}", h.getLease)
}

// request decodes the actor and, when dst is non-nil, the JSON body. It writes the failure itself.
func request(w http.ResponseWriter, r *http.Request, dst any) (auth.Actor, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		WriteError(w, r, auth.ErrUnauthenticated)
		return auth.Actor{}, false
	}

	if dst != nil {
		if err := httpx.ReadJSON(r, dst); err != nil {
			httpx.WriteError(w, r, http.StatusBadRequest, "invalid_request", "request body is not valid JSON for this endpoint", err.Error())
			return auth.Actor{}, false
		}
	}

	return actor, true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid id", nil)
		return uuid.Nil, false
	}

	return id, true
}

type createDraftRequest struct {
	PropertyID uuid.UUID       `json:"property_id"`
	ClientID   uuid.UUID       `json:"client_id"`
	Terms      json.RawMessage `json:"terms"`
}

func (h *Handler) createDraft(w http.ResponseWriter, r *http.Request) {
	var req createDraftRequest

	actor, ok := request(w, r, &req)
	if !ok {
		return
	}

	d, err := h.svc.CreateDraft(r.Context(), actor, lease.CreateDraftParams{
		PropertyID: req.PropertyID,
		ClientID:   req.ClientID,
		Terms:      req.Terms,
	})
	if err != nil {
		WriteError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toDraftResponse(d))
}

func (h *Handler) getDraft(w http.ResponseWriter, r *http.Request) {
	actor, ok := request(w, r, nil)
	if !ok {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.GetDraft(r.Context(), actor, id)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toDraftResponse(d))
}

func (h *Handler) listNegotiations(w http.ResponseWriter, r *http.Request) {
	actor, ok := request(w, r, nil)
	if !ok {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	negs, err := h.svc.ListNegotiations(r.Context(), actor, id)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toNegotiationList(negs))
}

func (h *Handler) activeNegotiation(w http.ResponseWriter, r *http.Request) {
	actor, ok := request(w, r, nil)
	if !ok {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	n, err := h.svc.ActiveNegotiation(r.Context(), actor, id)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toNegotiationResponse(n))
}

type openNegotiationRequest struct {
	DraftID       uuid.UUID       `json:"draft_id"`
	ProposedTerms json.RawMessage `json:"proposed_terms"`
	Message       string          `json:"message"`
}

func (h *Handler) openNegotiation(w http.ResponseWriter, r *http.Request) {
	var req openNegotiationRequest

	actor, ok := request(w, r, &req)
	if !ok {
		return
	}

	res, err := h.svc.OpenNegotiation(r.Context(), actor, lease.OpenParams{
		DraftID:       req.DraftID,
		ProposedTerms: req.ProposedTerms,
		Message:       req.Message,
	})
	if err != nil {
		WriteError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, openResponse{
		NegotiationID: res.Negotiation.ID,
		DraftStatus:   res.DraftStatus,
	})
}

type respondRequest struct {
	Action          lease.Action    `json:"action"`
	CounterTerms    json.RawMessage `json:"counter_terms"`
	ResponseMessage string          `json:"response_message"`
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req respondRequest

	actor, ok := request(w, r, &req)
	if !ok {
		return
	}

	res, err := h.svc.Respond(r.Context(), actor, lease.RespondParams{
		NegotiationID:   id,
		Action:          req.Action,
		CounterTerms:    req.CounterTerms,
		ResponseMessage: req.ResponseMessage,
	})
	if err != nil {
		WriteError(w, r, err)
		return
	}

	resp := respondResponse{
		Negotiation: toNegotiationResponse(res.Negotiation),
		DraftStatus: res.DraftStatus,
	}

	if res.Counter != nil {
		resp.Counter = new(toNegotiationResponse(res.Counter))
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) chain(w http.ResponseWriter, r *http.Request) {
	actor, ok := request(w, r, nil)
	if !ok {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	chain, err := h.svc.Chain(r.Context(), actor, id)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toNegotiationList(chain))
}

type finalizeRequest struct {
	Action lease.FinalizeAction `json:"action"`
}

func (h *Handler) finalize(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req finalizeRequest

	actor, ok := request(w, r, &req)
	if !ok {
		return
	}

	res, err := h.svc.Finalize(r.Context(), actor, id, req.Action)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	if res.Lease == nil {
		httpx.WriteJSON(w, http.StatusOK, finalizeResponse{DraftStatus: res.DraftStatus})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, finalizeResponse{
		LeaseID:     &res.Lease.ID,
		ActiveFrom:  res.Lease.ActiveFrom.Format(time.DateOnly),
		DraftStatus: res.DraftStatus,
	})
}

func (h *Handler) leaseForDraft(w http.ResponseWriter, r *http.Request) {
	actor, ok := request(w, r, nil)
	if !ok {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	l, err := h.svc.LeaseForDraft(r.Context(), actor, id)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toLeaseResponse(l))
}

func (h *Handler) getLease(w http.ResponseWriter, r *http.Request) {
	actor, ok := request(w, r, nil)
	if !ok {
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	l, err := h.svc.GetLease(r.Context(), actor, id)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toLeaseResponse(l))
}
