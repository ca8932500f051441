// Package docs registers the OpenAPI document served at /swagger-doc.json.
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
    "securityDefinitions": {
        "CookieAuth": {
            "type": "apiKey",
            "name": "session_id",
            "in": "cookie"
        }
    },
    "paths": {
        "/auth/login": {
            "get": {"tags": ["auth"], "summary": "Login form descriptor", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["auth"], "summary": "Login",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/logout": {
            "post": {"tags": ["auth"], "summary": "Logout", "responses": {"200": {"description": "OK"}}}
        },
        "/auth/me": {
            "get": {"security": [{"CookieAuth": []}], "tags": ["auth"], "summary": "Current identity", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/usuarios": {
            "get": {"security": [{"CookieAuth": []}], "tags": ["usuarios"], "summary": "List usuarios", "responses": {"200": {"description": "OK"}}},
            "post": {
                "security": [{"CookieAuth": []}], "tags": ["usuarios"], "summary": "Create a usuario",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateUsuarioRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/usuarios/{username}": {
            "get": {"security": [{"CookieAuth": []}], "tags": ["usuarios"], "summary": "Get a usuario", "parameters": [{"name": "username", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {
                "security": [{"CookieAuth": []}], "tags": ["usuarios"], "summary": "Update a usuario",
                "parameters": [{"name": "username", "in": "path", "required": true, "type": "string"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateUsuarioRequest"}}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {"security": [{"CookieAuth": []}], "tags": ["usuarios"], "summary": "Delete a usuario", "parameters": [{"name": "username", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/contratos": {
            "get": {"security": [{"CookieAuth": []}], "tags": ["contratos"], "summary": "List the caller's contratos", "responses": {"200": {"description": "OK"}}},
            "post": {
                "security": [{"CookieAuth": []}], "tags": ["contratos"], "summary": "Create a contrato owned by the caller",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ContratoRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/contratos/{id}": {
            "get": {"security": [{"CookieAuth": []}], "tags": ["contratos"], "summary": "Get a contrato by ID", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {
                "security": [{"CookieAuth": []}], "tags": ["contratos"], "summary": "Replace a contrato",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ContratoRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            },
            "delete": {"security": [{"CookieAuth": []}], "tags": ["contratos"], "summary": "Delete a contrato", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object", "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.CreateUsuarioRequest": {
            "type": "object", "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}, "nombre": {"type": "string"}, "email": {"type": "string"}}
        },
        "dto.UpdateUsuarioRequest": {
            "type": "object", "required": ["password"],
            "properties": {"password": {"type": "string"}, "nombre": {"type": "string"}, "email": {"type": "string"}}
        },
        "dto.ContratoRequest": {
            "type": "object", "required": ["fecha_firma", "fecha_inicio", "fecha_fin", "empresa", "empleado"],
            "properties": {
                "fecha_firma": {"type": "string", "example": "2024-01-15"},
                "fecha_inicio": {"type": "string", "example": "2024-02-01"},
                "fecha_fin": {"type": "string", "example": "2024-12-31"},
                "empresa": {"type": "string"},
                "empleado": {"type": "string"},
                "funciones": {"type": "string"},
                "monto": {"type": "string", "example": "1500.00"},
                "frecuencia_de_pago": {"type": "string", "example": "Mensual"},
                "usuario_username": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "SGC API",
	Description:      "Contract management API with session auth.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
