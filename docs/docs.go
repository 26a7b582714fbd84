// Package docs содержит swagger-спецификацию HTTP API, собранную из аннотаций обработчиков
// (swag init -g cmd/app/app.go -o docs).
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
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Листинг категорий",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Номер страницы", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Размер страницы", "name": "perPage", "in": "query"},
                    {"type": "string", "description": "Поиск по имени и описанию", "name": "search", "in": "query"},
                    {"type": "string", "default": "name", "description": "name | createdAt | updatedAt", "name": "sort", "in": "query"},
                    {"type": "string", "default": "asc", "description": "asc | desc", "name": "dir", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CategoryListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Создание категории",
                "parameters": [
                    {"description": "Категория", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.IDResponse"}},
                    "400": {"description": "Некорректное тело запроса", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/categories/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Получение категории по ID",
                "parameters": [
                    {"type": "string", "description": "ID категории", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CategoryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Изменение категории",
                "parameters": [
                    {"type": "string", "description": "ID категории", "name": "id", "in": "path", "required": true},
                    {"description": "Категория", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CategoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["categories"],
                "summary": "Удаление категории",
                "parameters": [
                    {"type": "string", "description": "ID категории", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ErrorMessage": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "http.CategoryRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "is_active": {"type": "boolean"},
                "name": {"type": "string"}
            }
        },
        "http.CategoryResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "deleted_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "is_active": {"type": "boolean"},
                "name": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "http.CategoryListItemResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "deleted_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "is_active": {"type": "boolean"},
                "name": {"type": "string"}
            }
        },
        "http.CategoryListResponse": {
            "type": "object",
            "properties": {
                "current_page": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.CategoryListItemResponse"}},
                "per_page": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/domain.ErrorMessage"}},
                "message": {"type": "string"}
            }
        },
        "http.IDResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Catalog Admin API",
	Description:      "Администрирование категорий каталога.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
