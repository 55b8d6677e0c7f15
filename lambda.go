package main

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

const principalID = "apikey"

// HTTP API（payload 2.0）简单响应
func simpleResponseHandler(a *Authorizer) func(context.Context, events.APIGatewayV2CustomAuthorizerV2Request) (events.APIGatewayV2CustomAuthorizerSimpleResponse, error) {
	return func(ctx context.Context, req events.APIGatewayV2CustomAuthorizerV2Request) (events.APIGatewayV2CustomAuthorizerSimpleResponse, error) {
		decision := a.Authorize(req.Headers)
		slog.InfoContext(ctx, "authorize",
			"payload", payloadV2,
			"routeArn", req.RouteArn,
			"requestId", req.RequestContext.RequestID,
			"authorized", decision.IsAuthorized,
		)
		return events.APIGatewayV2CustomAuthorizerSimpleResponse{
			IsAuthorized: decision.IsAuthorized,
			Context:      decision.Context,
		}, nil
	}
}

// REST API（payload 1.0）REQUEST 授权器，返回 IAM 策略
func policyResponseHandler(a *Authorizer) func(context.Context, events.APIGatewayCustomAuthorizerRequestTypeRequest) (events.APIGatewayCustomAuthorizerResponse, error) {
	return func(ctx context.Context, req events.APIGatewayCustomAuthorizerRequestTypeRequest) (events.APIGatewayCustomAuthorizerResponse, error) {
		decision := a.Authorize(req.Headers)
		slog.InfoContext(ctx, "authorize",
			"payload", payloadV1,
			"methodArn", req.MethodArn,
			"requestId", req.RequestContext.RequestID,
			"authorized", decision.IsAuthorized,
		)
		return policyResponse(decision, req.MethodArn), nil
	}
}

func policyResponse(decision Decision, methodArn string) events.APIGatewayCustomAuthorizerResponse {
	effect := "Deny"
	if decision.IsAuthorized {
		effect = "Allow"
	}
	return events.APIGatewayCustomAuthorizerResponse{
		PrincipalID: principalID,
		PolicyDocument: events.APIGatewayCustomAuthorizerPolicy{
			Version: "2012-10-17",
			Statement: []events.IAMPolicyStatement{
				{
					Action:   []string{"execute-api:Invoke"},
					Effect:   effect,
					Resource: []string{methodArn},
				},
			},
		},
		Context: decision.Context,
	}
}

func runLambda(cfg Config, a *Authorizer) {
	slog.Info("starting lambda authorizer", "payload", cfg.PayloadVersion)
	if cfg.PayloadVersion == payloadV1 {
		lambda.Start(policyResponseHandler(a))
		return
	}
	lambda.Start(simpleResponseHandler(a))
}
