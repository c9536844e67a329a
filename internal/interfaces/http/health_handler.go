package http

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler endpoints de liveness y diagnóstico básico.
type HealthHandler struct {
	serviceName string
	version     string
	env         string
}

// NewHealthHandler construye el handler de health.
func NewHealthHandler(serviceName, version, env string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, env: env}
}

// Check responde el estado general del servicio.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "UP",
		"service":   h.serviceName,
		"message":   "API funcionando correctamente",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   h.version,
	})
}

// Ping responde "pong" plano para probes mínimos.
func (h *HealthHandler) Ping(c *fiber.Ctx) error {
	return c.SendString("pong")
}

// Status agrega información de runtime para diagnóstico.
func (h *HealthHandler) Status(c *fiber.Ctx) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return c.JSON(fiber.Map{
		"status":    "UP",
		"timestamp": time.Now().Format(time.RFC3339),
		"system": fiber.Map{
			"allocBytes":      mem.Alloc,
			"totalAllocBytes": mem.TotalAlloc,
			"sysBytes":        mem.Sys,
			"numGoroutine":    runtime.NumGoroutine(),
			"numCPU":          runtime.NumCPU(),
		},
		"application": fiber.Map{
			"name":        h.serviceName,
			"version":     h.version,
			"environment": h.env,
		},
	})
}
