package meals

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

type MealController struct {
	Log     *zap.Logger
	Usecase Usecase
}

func NewController(log *zap.Logger, usecase Usecase) *MealController {
	return &MealController{
		Log:     log,
		Usecase: usecase,
	}
}

// Routes: PUT carries a status-only body, not a full document.
func (ctrl *MealController) Routes(router chi.Router) {
	router.Get("/", ctrl.List)
	router.Post("/", ctrl.Create)
	router.Put("/{id}", ctrl.UpdateStatus)
	router.Delete("/{id}", ctrl.Delete)
}

func (ctrl *MealController) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	meals, err := ctrl.Usecase.ListPopulated(ctx)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, meals)
}

func (ctrl *MealController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	request := new(requests.MealPreparation)
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

func (ctrl *MealController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	if id == "" {
		ctrl.respondError(w, exceptions.ErrURLParamID(fmt.Errorf("missing id"), "id"))
		return
	}

	request := new(requests.UpdateMealStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.respondError(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.respondError(w, exceptions.ErrInputValidation(err))
		return
	}

	updated, err := ctrl.Usecase.UpdateStatus(ctx, id, request.Status)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, updated)
}

func (ctrl *MealController) Delete(w http.ResponseWriter, r *http.Request) {
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
	utils.BuildMessageResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ResourceDeletedSuccess, constvars.ResourceMeal))
}

func (ctrl *MealController) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
