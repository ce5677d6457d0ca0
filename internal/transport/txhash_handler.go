package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/hoodrunio/babylon-staker-indexer/internal/txid"
	"go.uber.org/zap"
)

// TxHashPath is the route serving identifier computation.
const TxHashPath = "/v1/txhash"

// Consensus caps transactions at 4 MB; hex doubles that.
const maxBodyBytes = 8 << 20

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Hasher interface {
		ComputeHash(rawHex string, includeWitness bool) (string, error)
	}
)

type txHashRequest struct {
	Hex     string `json:"hex"`
	Witness bool   `json:"witness"`
}

type txHashResponse struct {
	Hash    string `json:"hash"`
	Witness bool   `json:"witness"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// TxHashHandler serves TXID and WTXID computation over HTTP.
type TxHashHandler struct {
	hasher Hasher
	logger *zap.Logger
}

// NewTxHashHandler returns a TxHashHandler instance.
func NewTxHashHandler(hasher Hasher, logger *zap.Logger) *TxHashHandler {
	return &TxHashHandler{hasher: hasher, logger: logger}
}

// Register mounts the handler on a gateway mux.
func (h *TxHashHandler) Register(mux *gwruntime.ServeMux) error {
	return mux.HandlePath(http.MethodPost, TxHashPath, h.ComputeHash)
}

// ComputeHash decodes a {"hex","witness"} request and responds with the
// identifier in display order.
func (h *TxHashHandler) ComputeHash(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req txHashRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", err)
			return
		}
		h.writeError(w, http.StatusBadRequest, "invalid_request", err)
		return
	}

	hash, err := h.hasher.ComputeHash(req.Hex, req.Witness)
	if err != nil {
		h.writeError(w, statusOf(err), txid.Kind(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, txHashResponse{Hash: hash, Witness: req.Witness})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, txid.ErrInvalidHex):
		return http.StatusBadRequest
	case errors.Is(err, txid.ErrOutOfBounds), errors.Is(err, txid.ErrTooShort):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *TxHashHandler) writeError(w http.ResponseWriter, status int, kind string, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("compute hash failed", zap.Error(err))
	} else {
		h.logger.Debug("rejected compute hash request", zap.String("kind", kind), zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}

func (h *TxHashHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
