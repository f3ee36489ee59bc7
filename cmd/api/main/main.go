//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"github.com/taxpro/taxpro-api/internal/logger"
	"github.com/taxpro/taxpro-api/internal/server"
	"go.uber.org/zap"
)

// @title           TaxPro API
// @version         1.0
// @description     Federal and state income tax estimates, tax tables, calculation history and document capture.
// @BasePath        /api

var ginLambda *ginadapter.GinLambda

func init() {
	server.InitializeHandlers()

	r := gin.New()
	r.Use(gin.Recovery())
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if ce := logger.Log.Check(zap.DebugLevel, "Received Lambda request"); ce != nil {
		ce.Write(
			zap.String("path", req.Path),
			zap.String("request", spew.Sdump(req)),
		)
	}

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer server.Shutdown()
	lambda.Start(Handler)
}
