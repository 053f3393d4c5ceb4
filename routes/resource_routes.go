package routes

import (
	"resourcedir/internal/handlers"
	"resourcedir/internal/models"

	"github.com/gin-gonic/gin"
)

// resourcePaths maps each kind to its URL segment.
var resourcePaths = map[models.Kind]string{
	models.KindConsulate:   "consulates",
	models.KindLawyer:      "lawyers",
	models.KindSurgeon:     "surgeons",
	models.KindShelter:     "shelters",
	models.KindICEResource: "ice-resources",
}

// SetupResourceRoutes wires the browse/search/CRUD surface for every
// registered kind.
func SetupResourceRoutes(r *gin.RouterGroup, handler *handlers.ResourceHandler, kinds []models.Kind) {
	for _, kind := range kinds {
		path, ok := resourcePaths[kind]
		if !ok {
			path = kind.String() + "s"
		}

		group := r.Group("/" + path)
		{
			group.GET("", handler.List(kind))
			group.GET("/search", handler.Search(kind))
			group.GET("/:id", handler.GetByID(kind))
			group.POST("", handler.Create(kind))
			group.PUT("/:id", handler.Update(kind))
			group.DELETE("/:id", handler.Delete(kind))
		}
	}
}
