package dietcharts

import (
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/dto/requests"
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

type DietChartController struct {
	Log     *zap.Logger
	Usecase Usecase
}

func NewController(log *zap.Logger, usecase Usecase) *DietChartController {
	return &DietChartController{
		Log:     log,
		Usecase: usecase,
	}
}

func (ctrl *DietChartController) Routes(router chi.Router) {
	router.Get("/", ctrl.List)
	router.Post("/", ctrl.Create)
	router.Put("/{id}", ctrl.Update)
	router.Delete("/{id}", ctrl.Delete)
}

func (ctrl *DietChartController) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	charts, err := ctrl.Usecase.ListPopulated(ctx)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, charts)
}

func (ctrl *DietChartController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	request := new(requests.DietChart)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.respondError(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.respondError(w, exceptions.ErrInputValidation(err))
		return
	}

	created, err := ctrl.Usecase.Create(ctx, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusCreated, created)
}

func (ctrl *DietChartController) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	if id == "" {
		ctrl.respondError(w, exceptions.ErrURLParamID(fmt.Errorf("missing id"), "id"))
		return
	}

	request := new(requests.DietChart)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.respondError(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.respondError(w, exceptions.ErrInputValidation(err))
		return
	}

	updated, err := ctrl.Usecase.Update(ctx, id, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, updated)
}

func (ctrl *DietChartController) Delete(w http.ResponseWriter, r *http.Request) {
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
	utils.BuildMessageResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ResourceDeletedSuccess, constvars.ResourceDietChart))
}

func (ctrl *DietChartController) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
