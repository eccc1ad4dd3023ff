package resource

import (
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/exceptions"
	"caretray-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// Controller serves the uniform CRUD surface of one entity. Req is the
// request DTO validated on create and update; MapRequest turns it into the
// stored model.
type Controller[Req any, T any] struct {
	Log          *zap.Logger
	Usecase      Usecase[T]
	ResourceName string
	MapRequest   func(request *Req) *T
}

func NewController[Req any, T any](
	log *zap.Logger,
	usecase Usecase[T],
	resourceName string,
	mapRequest func(request *Req) *T,
) *Controller[Req, T] {
	return &Controller[Req, T]{
		Log:          log,
		Usecase:      usecase,
		ResourceName: resourceName,
		MapRequest:   mapRequest,
	}
}

// Routes attaches the standard handlers. Entities with extra behavior wire
// their own routes and reuse the handlers piecemeal.
func (ctrl *Controller[Req, T]) Routes(router chi.Router) {
	router.Get("/", ctrl.List)
	router.Post("/", ctrl.Create)
	router.Put("/{id}", ctrl.Update)
	router.Delete("/{id}", ctrl.Delete)
}

func (ctrl *Controller[Req, T]) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	items, err := ctrl.Usecase.ListAll(ctx)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, items)
}

func (ctrl *Controller[Req, T]) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	request := new(Req)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.respondError(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.respondError(w, exceptions.ErrInputValidation(err))
		return
	}

	created, err := ctrl.Usecase.Create(ctx, ctrl.MapRequest(request))
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusCreated, created)
}

func (ctrl *Controller[Req, T]) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	if id == "" {
		ctrl.respondError(w, exceptions.ErrURLParamID(fmt.Errorf("missing id"), "id"))
		return
	}

	request := new(Req)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.respondError(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.respondError(w, exceptions.ErrInputValidation(err))
		return
	}

	updated, err := ctrl.Usecase.Update(ctx, id, ctrl.MapRequest(request))
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, updated)
}

func (ctrl *Controller[Req, T]) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	if id == "" {
		ctrl.respondError(w, exceptions.ErrURLParamID(fmt.Errorf("missing id"), "id"))
		return
	}

	if err := ctrl.Usecase.Delete(ctx, id); err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildMessageResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ResourceDeletedSuccess, ctrl.ResourceName))
}

func (ctrl *Controller[Req, T]) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
