package server

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/weatherdi/di"
	"github.com/kbukum/weatherdi/weather"
)

// TemperatureHandler serves GET /v1/temperature/:city. The weather service is
// resolved from container on every request.
func TemperatureHandler(container di.Container, key di.Key) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		city := c.Param("city")

		svc, err := di.Resolve[*weather.Service](ctx, container, key)
		if err != nil {
			RespondWithError(c, err)
			return
		}

		temp, err := svc.GetTemperature(ctx, city)
		if err != nil {
			RespondWithError(c, err)
			return
		}
		RespondOK(c, weather.Report{City: city, Temperature: temp})
	}
}

// RegisterWeatherRoutes mounts the weather API under /v1.
func (s *Server) RegisterWeatherRoutes(container di.Container, key di.Key) {
	v1 := s.engine.Group("/v1")
	v1.GET("/temperature/:city", TemperatureHandler(container, key))
}
