// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/health": {
            "get": {"produces": ["application/json"], "tags": ["system"], "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.HealthResponse"}}}}
        },
        "/api/auth/login": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["auth"], "summary": "Admin login",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/admin.LoginRequest"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}, "429": {"description": "Too Many Requests"}}}
        },
        "/api/gym-sessions": {
            "get": {"produces": ["application/json"], "tags": ["gym-sessions"], "summary": "List visits", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "boolean", "name": "active", "in": "query"}],
                "responses": {"200": {"description": "OK"}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["gym-sessions"], "summary": "Admit a client", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/visit.EnterRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/gym-sessions/{id}/exit": {
            "put": {"produces": ["application/json"], "tags": ["gym-sessions"], "summary": "Record an exit", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/clients/{id}/exit": {
            "put": {"produces": ["application/json"], "tags": ["gym-sessions"], "summary": "Record an exit by client", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/dashboard/stats": {
            "get": {"produces": ["application/json"], "tags": ["dashboard"], "summary": "Dashboard counters", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "api.ErrorResponse": {"type": "object", "properties": {"message": {"type": "string", "example": "Client not found"}}},
        "api.HealthResponse": {"type": "object", "properties": {"status": {"type": "string", "example": "ok"}, "message": {"type": "string"}}},
        "admin.LoginRequest": {"type": "object", "required": ["adminID", "password"], "properties": {"adminID": {"type": "string"}, "password": {"type": "string"}}},
        "visit.EnterRequest": {"type": "object", "required": ["clientId"], "properties": {"clientId": {"type": "string", "example": "42"}, "lockerNumber": {"type": "integer"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Gym Management API",
	Description:      "Back office API for gym admissions, memberships and payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
