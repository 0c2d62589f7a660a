// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/api/v1/shopping-list/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ShoppingList"],
                "summary": "List items",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive name search", "name": "q", "in": "query"},
                    {"type": "string", "description": "all, purchased or unpurchased", "name": "filter", "in": "query"},
                    {"type": "string", "description": "name, date or purchased", "name": "sort", "in": "query"},
                    {"type": "string", "description": "Boolean expression over item fields", "name": "where", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ShoppingList"],
                "summary": "Add an item",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/shopping-list/items/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ShoppingList"],
                "summary": "Edit an item",
                "parameters": [{"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["ShoppingList"],
                "summary": "Delete an item",
                "parameters": [{"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/shopping-list/items/{id}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["ShoppingList"],
                "summary": "Toggle purchased",
                "parameters": [{"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/shopping-list/stats": {
            "get": {"produces": ["application/json"], "tags": ["ShoppingList"], "summary": "List statistics", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/shopping-list/state": {
            "get": {"produces": ["application/json"], "tags": ["ShoppingList"], "summary": "List state", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/shopping-list/error": {
            "delete": {"produces": ["application/json"], "tags": ["ShoppingList"], "summary": "Dismiss error", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/shopping-list/notifications": {
            "get": {"produces": ["application/json"], "tags": ["ShoppingList"], "summary": "Active notifications", "responses": {"200": {"description": "OK"}}}
        },
        "/health": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "List still loading"}}}},
        "/live": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Shopping List API",
	Description:      "Shopping list with persistent storage, search, filter and sort.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
