package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
	"schoolhub/pkg/ctxdata"
	"schoolhub/pkg/logging"
)

var ErrBadRequest = errors.New("bad request")

const paginationHeader = "X-Pagination"

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	DeletePrefix(ctx context.Context, prefix string)
}

// paged is implemented by model.Page.
type paged interface {
	Pagination() model.PageMeta
	Payload() any
}

func mapErr(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrConflict),
		errors.Is(err, errdefs.ErrWrongRole),
		errors.Is(err, errdefs.ErrValidation),
		errors.Is(err, errdefs.ErrNotInBatch):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Handle adapts a service call to an http.HandlerFunc. When parseBody is set the JSON body
// is decoded into Req before method runs.
func Handle[Req any, Resp any](
	method func(r *http.Request, req *Req) (Resp, error),
	parseBody bool,
	status int,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		req := new(Req)

		if parseBody {
			if err := decodeBody(r, req); err != nil {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Error(ctx, "Failed to parse request body", zap.Error(err))
				}
				writeErrorJSON(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		resp, err := method(r, req)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		if _, err := writeResponse(w, status, resp); err != nil {
			if logger, ok := logging.GetFromContext(ctx); ok {
				logger.Error(ctx, "Failed to serialize response", zap.Error(err))
			}
		}
	}
}

// HandleWithCache serves successful GET responses from cache when present and stores them otherwise.
// A nil cache degrades to Handle.
func HandleWithCache[Req any, Resp any](
	method func(r *http.Request, req *Req) (Resp, error),
	cache Cache,
	keyFunc func(r *http.Request) (string, error),
	ttl time.Duration,
) http.HandlerFunc {
	if cache == nil {
		return Handle(method, false, http.StatusOK)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		key, err := keyFunc(r)
		if err == nil {
			if data, ok := cache.Get(ctx, key); ok {
				var entry cachedResponse
				if json.Unmarshal(data, &entry) == nil {
					if entry.Pagination != "" {
						w.Header().Set(paginationHeader, entry.Pagination)
					}
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusOK)
					w.Write(entry.Body)
					return
				}
			}
		} else {
			key = ""
		}

		resp, err := method(r, new(Req))
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		entry, err := writeResponse(w, http.StatusOK, resp)
		if err != nil {
			if logger, ok := logging.GetFromContext(ctx); ok {
				logger.Error(ctx, "Failed to serialize response", zap.Error(err))
			}
			return
		}

		if key != "" {
			if data, err := json.Marshal(entry); err == nil {
				cache.Set(ctx, key, data, ttl)
			}
		}
	}
}

type cachedResponse struct {
	Pagination string          `json:"pagination,omitempty"`
	Body       json.RawMessage `json:"body"`
}

func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", ErrBadRequest)
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

func writeResponse(w http.ResponseWriter, status int, resp any) (cachedResponse, error) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return cachedResponse{}, nil
	}

	var entry cachedResponse
	body := resp
	if page, ok := resp.(paged); ok {
		meta, err := json.Marshal(page.Pagination())
		if err != nil {
			writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
			return entry, err
		}
		entry.Pagination = string(meta)
		body = page.Payload()
	}

	data, err := json.Marshal(body)
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return entry, err
	}
	entry.Body = data

	if entry.Pagination != "" {
		w.Header().Set(paginationHeader, entry.Pagination)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
	return entry, nil
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	statusCode := mapErr(err)
	message := err.Error()
	if statusCode == http.StatusInternalServerError {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "Request failed", zap.Error(err))
		}
		message = http.StatusText(statusCode)
	} else if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Debug(ctx, "Request rejected", zap.Int("status", statusCode), zap.Error(err))
	}
	writeErrorJSON(w, statusCode, message)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("%w: missing path param: %s", ErrBadRequest, key)
	}
	return val, nil
}

func pathUUID(r *http.Request, key string) (uuid.UUID, error) {
	val, err := parsePathParam(r, key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s: %s", ErrBadRequest, key, val)
	}
	return id, nil
}

// pathUUIDs parses the named path params in order.
func pathUUIDs(r *http.Request, keys ...string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(keys))
	for _, key := range keys {
		id, err := pathUUID(r, key)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parsePageParams(r *http.Request) (model.PageParams, error) {
	q := r.URL.Query()
	params := model.PageParams{
		OrderBy:    q.Get("orderBy"),
		SearchTerm: q.Get("searchTerm"),
	}
	var err error
	if v := q.Get("pageNumber"); v != "" {
		if params.PageNumber, err = strconv.Atoi(v); err != nil || params.PageNumber > model.MaxPageNumber {
			return params, fmt.Errorf("%w: invalid pageNumber: %s", ErrBadRequest, v)
		}
	}
	if v := q.Get("pageSize"); v != "" {
		if params.PageSize, err = strconv.Atoi(v); err != nil {
			return params, fmt.Errorf("%w: invalid pageSize: %s", ErrBadRequest, v)
		}
	}
	return params, nil
}

func actorFrom(r *http.Request) (uuid.UUID, model.Role, error) {
	actor, ok := ctxdata.GetActor(r.Context())
	if !ok || actor.UserID == uuid.Nil {
		return uuid.Nil, "", errdefs.Newf(errdefs.ErrAuthentication, "Authentication required.")
	}
	return actor.UserID, model.Role(actor.Role), nil
}

// cacheKey builds a key from a prefix, the route path and the raw query.
func cacheKey(prefix string) func(r *http.Request) (string, error) {
	return func(r *http.Request) (string, error) {
		if r.URL == nil {
			return "", fmt.Errorf("%w: no url", ErrBadRequest)
		}
		key := prefix + r.URL.Path
		if r.URL.RawQuery != "" {
			key += "?" + r.URL.RawQuery
		}
		return key, nil
	}
}

func invalidate(ctx context.Context, cache Cache, prefixes ...string) {
	if cache == nil {
		return
	}
	for _, prefix := range prefixes {
		cache.DeletePrefix(ctx, prefix)
	}
}
