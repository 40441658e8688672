package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/bmc-toolkit/hwisolation/pkg/logger"
)

// resourceKind binds a Redfish resource type to the inventory interfaces its
// objects implement.
type resourceKind struct {
	name       string
	odataType  string
	collection string
	interfaces []string
}

var (
	memoryKind = resourceKind{
		name:       "Memory",
		odataType:  "#Memory.v1_12_0.Memory",
		collection: "/redfish/v1/Systems/system/Memory/",
		interfaces: []string{"xyz.openbmc_project.Inventory.Item.Dimm"},
	}

	processorKind = resourceKind{
		name:       "Processor",
		odataType:  "#Processor.v1_12_0.Processor",
		collection: "/redfish/v1/Systems/system/Processors/",
		interfaces: []string{
			"xyz.openbmc_project.Inventory.Item.Cpu",
			"xyz.openbmc_project.Inventory.Item.CpuCore",
		},
	}
)

// enabledPatch is the accepted PATCH body. Enabled=false isolates the
// resource from system boot, Enabled=true de-isolates it.
type enabledPatch struct {
	Enabled *bool `json:"Enabled" validate:"required"`
}

// IsolationRoutes -.
type IsolationRoutes struct {
	uc       Isolator
	log      logger.Interface
	validate *validator.Validate
}

// NewRoutes registers the isolation resource routes on the Redfish group.
func NewRoutes(group *gin.RouterGroup, uc Isolator, log logger.Interface) *IsolationRoutes {
	r := &IsolationRoutes{
		uc:       uc,
		log:      log,
		validate: validator.New(),
	}

	group.GET("/", r.serviceRoot)
	group.GET("/Systems/system/Memory/:resourceId", r.getResource(memoryKind))
	group.PATCH("/Systems/system/Memory/:resourceId", r.patchResource(memoryKind))
	group.GET("/Systems/system/Processors/:resourceId", r.getResource(processorKind))
	group.PATCH("/Systems/system/Processors/:resourceId", r.patchResource(processorKind))

	return r
}

func (r *IsolationRoutes) serviceRoot(c *gin.Context) {
	setRedfishHeaders(c)

	c.JSON(http.StatusOK, gin.H{
		"@odata.id":      "/redfish/v1/",
		"@odata.type":    "#ServiceRoot.v1_12_0.ServiceRoot",
		"Id":             "RootService",
		"Name":           "Root Service",
		"RedfishVersion": "1.17.0",
		"Systems":        IDRef{ODataID: "/redfish/v1/Systems"},
	})
}

// getResource reports the resource's isolation status as Redfish Status
// conditions.
func (r *IsolationRoutes) getResource(kind resourceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		resourceID := c.Param("resourceId")

		condition, outcome := r.uc.GetIsolationStatus(c.Request.Context(), kind.name, resourceID, kind.interfaces)
		if !outcome.IsSuccess() {
			writeOutcome(c, outcome)

			return
		}

		setRedfishHeaders(c)

		c.JSON(http.StatusOK, gin.H{
			"@odata.id":   kind.collection + resourceID,
			"@odata.type": kind.odataType,
			"Id":          resourceID,
			"Name":        kind.name,
			"Status":      presentStatus(condition),
		})
	}
}

// patchResource processes an isolation request for the resource.
func (r *IsolationRoutes) patchResource(kind resourceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		resourceID := c.Param("resourceId")

		var req enabledPatch
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, fmt.Sprintf("Invalid request body: %s", err.Error()))

			return
		}

		if err := r.validate.Struct(req); err != nil {
			badRequest(c, "Missing or empty Enabled")

			return
		}

		outcome := r.uc.ProcessIsolationRequest(c.Request.Context(), kind.name, resourceID, *req.Enabled, kind.interfaces)
		writeOutcome(c, outcome)
	}
}

func badRequest(c *gin.Context, message string) {
	setRedfishHeaders(c)

	c.JSON(http.StatusBadRequest, RedfishError{
		Error: RedfishErrorBody{
			Code:    "Base.1.13.0.GeneralError",
			Message: message,
			MessageExtendedInfo: []MessageInfo{{
				ODataType: "#Message.v1_1_1.Message",
				MessageID: "Base.1.13.0.GeneralError",
				Message:   message,
			}},
		},
	})
}
