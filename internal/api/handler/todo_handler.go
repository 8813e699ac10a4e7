package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/linity/todo-api/internal/api/metrics"
	"github.com/linity/todo-api/internal/core/domain"
	"github.com/linity/todo-api/internal/core/ports"
)

// TodoHandler handles HTTP requests for todo operations. Every handler runs
// behind the Auth middleware; the owner is always the authenticated identity,
// never client input.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// List handles GET /todos.
//
// @Summary      List the caller's todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        completed  query     bool    false  "Filter by completion state"
// @Param        search     query     string  false  "Case-insensitive substring match on title"
// @Success      200        {array}   todoResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	owner, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var filter ports.TodoFilter
	if raw := c.QueryParam("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "completed must be a boolean")
		}
		filter.Completed = &completed
	}
	filter.Search = c.QueryParam("search")

	todos, err := h.service.List(c.Request().Context(), owner, filter)
	if err != nil {
		return err
	}

	metrics.TodoOpsTotal.WithLabelValues("list").Inc()
	return c.JSON(http.StatusOK, toTodoListResponse(todos))
}

// Create handles POST /todos.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTodoRequest  true  "Todo details"
// @Success      200   {object}  todoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	owner, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo, err := h.service.Create(c.Request().Context(), owner, req.Title, req.Completed)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "unknown account")
		}
		return err
	}

	metrics.TodoOpsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Get handles GET /todos/:id.
//
// @Summary      Get a todo by id
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Todo id"
// @Success      200  {object}  todoResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /todos/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	owner, err := ctxUsername(c)
	if err != nil {
		return err
	}

	id, err := todoID(c)
	if err != nil {
		return err
	}

	todo, err := h.service.Get(c.Request().Context(), owner, id)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "todo not found")
		}
		return err
	}

	metrics.TodoOpsTotal.WithLabelValues("get").Inc()
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Update handles PUT /todos/:id. Absent body fields keep their stored values.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Todo id"
// @Param        body  body      updateTodoRequest  true  "Fields to change"
// @Success      200   {object}  todoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	owner, err := ctxUsername(c)
	if err != nil {
		return err
	}

	id, err := todoID(c)
	if err != nil {
		return err
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	todo, err := h.service.Update(c.Request().Context(), owner, id, ports.TodoPatch{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "todo not found")
		}
		return err
	}

	metrics.TodoOpsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Delete handles DELETE /todos/:id.
//
// @Summary      Delete a todo
// @Tags         todos
// @Security     BearerAuth
// @Param        id  path  int  true  "Todo id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	owner, err := ctxUsername(c)
	if err != nil {
		return err
	}

	id, err := todoID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), owner, id); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "todo not found")
		}
		return err
	}

	metrics.TodoOpsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func todoID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid todo id")
	}
	return id, nil
}
