package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/grouptivate/grouptivate-api/internal/config"
	"github.com/grouptivate/grouptivate-api/internal/container"
	"github.com/grouptivate/grouptivate-api/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:   c.UserContainer.Handler,
		GroupHandler:  c.GroupContainer.Handler,
		GoalHandler:   c.GoalContainer.Handler,
		InviteHandler: c.InviteContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		adapter := chiadapter.New(handler.(*chi.Mux))
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	if err := c.StreakScheduler.Start(); err != nil {
		config.Logger().WithError(err).Fatal("Failed to start streak scheduler")
	}
	defer c.StreakScheduler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	config.Logger().WithField("port", port).Info("Server listening")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		config.Logger().WithError(err).Fatal("Server stopped")
	}
}
