// Package transport provides a new server-entity(by ginext) for serve-mode with handlers to serve endpoints
package transport

import (
	"context"
	"log"
	"net/http"

	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/leetie/minigrep/internal/model"
	"github.com/wb-go/wbf/ginext"
)

type TaskProcessor interface {
	ProcessTask(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

func NewServer(addr string, proc TaskProcessor) *http.Server {
	engine := ginext.New("release")
	engine.GET("/ping", HealthCheck)
	engine.POST("/search", ReceiveTask(proc))

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func HealthCheck(ctx *ginext.Context) {
	log.Println("Received a healthcheck request!")
	ctx.Status(http.StatusOK)
}

func ReceiveTask(proc TaskProcessor) func(ctx *ginext.Context) {
	return func(ctx *ginext.Context) {
		var task model.SearchTask

		if err := ctx.ShouldBindJSON(&task); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"failed to parse task from body": err.Error()})
			return
		}
		if task.TaskID == "" {
			task.TaskID = uuid.Generate().String()
		}

		log.Printf("Received task: %q", task.TaskID)

		res := proc.ProcessTask(ctx.Request.Context(), &task)
		log.Printf("Task %q: %d matching lines", res.TaskID, len(res.Output))

		ctx.JSON(http.StatusOK, res)
	}
}
