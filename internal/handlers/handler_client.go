package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/SscSPs/concierge_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to client records.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:clientID", h.getClient)
		clients.PUT("/:clientID", h.updateClient)
		clients.DELETE("/:clientID", h.deleteClient)
	}
}

// createClient godoc
// @Summary Create a client
// @Description Registers a new client with the property access details
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "Client", "create client")
		return
	}

	logger.Info("Client created", slog.String("client_id", client.ClientID))
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Tags clients
// @Produce  json
// @Success 200 {array} dto.ClientResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Client", "list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

// getClient godoc
// @Summary Get a client
// @Tags clients
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{clientID} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	clientID := c.Param("clientID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("client_id", clientID))

	client, err := h.clientService.GetClientByID(c.Request.Context(), clientID)
	if err != nil {
		respondServiceError(c, logger, err, "Client", "retrieve client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update a client
// @Description Updates the provided fields of a client; omitted fields are kept
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Param   client body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{clientID} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	clientID := c.Param("clientID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("client_id", clientID))
	var req dto.UpdateClientRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), clientID, req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "Client", "update client")
		return
	}

	logger.Info("Client updated")
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete a client
// @Description Removes the client record; missions and documents referencing it are kept
// @Tags clients
// @Param   clientID path string true "Client ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{clientID} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	clientID := c.Param("clientID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("client_id", clientID))

	if err := h.clientService.DeleteClient(c.Request.Context(), clientID); err != nil {
		respondServiceError(c, logger, err, "Client", "delete client")
		return
	}

	logger.Info("Client deleted")
	c.Status(http.StatusNoContent)
}
