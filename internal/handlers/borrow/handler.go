package borrow

import (
	"net/http"
	"strconv"
	"studio/infras/otel"
	"studio/internal/domains/borrow/model"
	"studio/internal/domains/borrow/model/dto"
	"studio/internal/domains/borrow/service"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	"studio/shared/validator"
	"studio/transport/http/middleware"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Borrow
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Borrow, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/api/borrows", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBorrows)
		routerGroup.Get("/{id}", handler.GetBorrowByID)
		routerGroup.With(handler.auth.APIKey).Put("/{id}", handler.UpdateBorrowStatus)
		routerGroup.With(handler.auth.APIKey).Delete("/{id}", handler.DeleteBorrow)
	})

	router.Post("/submit-borrow", handler.SubmitBorrow)
	router.Post("/send-borrow-reminder", handler.SendReminder)
	router.Post("/send-borrow-status", handler.SendStatusNotice)
}

// SubmitBorrow accepts the loan intake form. The response is sent once the
// record is stored and the admin notification is queued.
func (handler *Handler) SubmitBorrow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBorrow")
	defer scope.End()

	req := dto.CreateBorrowRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate borrow request")

		response.WithError(w, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit borrow request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Borrow request submitted successfully")

	response.WithSuccess(w, http.StatusOK, "Borrow request submitted successfully and notification queued for admin")
}

func (handler *Handler) GetBorrows(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBorrows")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	status := r.URL.Query().Get(model.FieldStatus)
	borrowDate := r.URL.Query().Get(model.FieldBorrowDate)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if borrowDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBorrowDate,
			Operator: gDto.FilterOperatorEq,
			Value:    borrowDate,
			Table:    model.TableName,
		})
	}

	borrows, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get borrow requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Borrow requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, borrows)
}

func (handler *Handler) GetBorrowByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBorrowByID")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	borrow, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get borrow request by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, borrow)
}

// UpdateBorrowStatus records the admin decision for one borrow request.
func (handler *Handler) UpdateBorrowStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBorrowStatus")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate status request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update borrow status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Borrow status updated successfully")

	response.WithSuccess(w, http.StatusOK, "Borrow status updated successfully")
}

func (handler *Handler) DeleteBorrow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBorrow")
	defer scope.End()

	id, err := parseID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete borrow request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Borrow request deleted successfully")

	response.WithSuccess(w, http.StatusOK, "Borrow request deleted successfully")
}

// SendReminder queues the equipment-return reminder for the student on the
// identified borrow request.
func (handler *Handler) SendReminder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendReminder")
	defer scope.End()

	req := dto.NotifyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.SendReminder(ctx, req.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to queue borrow reminder")

		response.WithError(w, err)

		return
	}

	response.WithSuccess(w, http.StatusOK, "Reminder email queued successfully")
}

// SendStatusNotice queues the decision notice for the identified borrow
// request.
func (handler *Handler) SendStatusNotice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendStatusNotice")
	defer scope.End()

	req := dto.NotifyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.SendStatusNotice(ctx, req.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to queue borrow status notice")

		response.WithError(w, err)

		return
	}

	response.WithSuccess(w, http.StatusOK, "Status notification queued successfully")
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid borrow id") //nolint:wrapcheck
	}

	return id, nil
}
