// Package docs holds the OpenAPI document served under /swagger. Keep it in
// step with the handler annotations when routes or payloads change.
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
        "/api/books": {
            "get": {
                "description": "All books, optionally filtered by exact category and featured flag. Filters combine with AND.",
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "List books",
                "parameters": [
                    {"type": "string", "description": "exact category name", "name": "category", "in": "query"},
                    {"type": "boolean", "description": "featured flag (true/false/1/0/yes/no/on/off)", "name": "featured", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/book.BookResult"}}},
                    "422": {"description": "malformed featured flag", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "post": {
                "description": "The server assigns the id and a placeholder image_url. Duplicate titles are allowed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Create a book",
                "parameters": [
                    {"description": "book fields", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateBookRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/book.BookResult"}},
                    "422": {"description": "validation failed", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/api/books/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Get a book",
                "parameters": [
                    {"type": "string", "description": "book id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/book.BookResult"}},
                    "404": {"description": "Book not found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "put": {
                "description": "Only non-null fields are changed. An empty object returns the record unchanged.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Update a book",
                "parameters": [
                    {"type": "string", "description": "book id", "name": "id", "in": "path", "required": true},
                    {"description": "fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateBookRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/book.BookResult"}},
                    "404": {"description": "Book not found", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "422": {"description": "validation failed", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/api/books/{id}/upload-cover": {
            "post": {
                "description": "Stored as <id>.<ext> under the uploads directory, replacing any previous file with that name.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Upload a cover image",
                "parameters": [
                    {"type": "string", "description": "book id", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "image file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/book.UploadCoverResponse"}},
                    "404": {"description": "Book not found", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "422": {"description": "file missing", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/api/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/book.CategoriesResult"}}
                }
            }
        },
        "/api/featured-books": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "List featured books",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/book.BookResult"}}}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "book.BookResult": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "author": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "image_url": {"type": "string"},
                "amazon_link": {"type": "string"},
                "featured": {"type": "boolean"}
            }
        },
        "book.CategoriesResult": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "book.UploadCoverResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Cover uploaded successfully"},
                "image_url": {"type": "string", "example": "/uploads/7d3c.jpg"}
            }
        },
        "dto.CreateBookRequest": {
            "type": "object",
            "required": ["amazon_link", "author", "category", "description", "price", "title"],
            "properties": {
                "title": {"type": "string", "example": "Bubble Bears Great Adventure"},
                "author": {"type": "string", "example": "Garry Jordan"},
                "category": {"type": "string", "example": "Young Readers"},
                "description": {"type": "string", "example": "Join Bubble Bear on an amazing adventure."},
                "price": {"type": "number", "example": 12.99},
                "amazon_link": {"type": "string", "example": "https://www.amazon.com/dp/B08XYZ123A"},
                "featured": {"type": "boolean", "example": false}
            }
        },
        "dto.UpdateBookRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "author": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number", "example": 15},
                "amazon_link": {"type": "string"},
                "featured": {"type": "boolean", "example": true}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "message": {"type": "string", "example": "Literary Depot API is running"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "detail": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8001",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Literary Depot API",
	Description:      "Book catalog backing the Literary Depot storefront.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
