// Package docs holds the swagger document served at /swagger. The generic
// resource handler carries no per-route swag annotations, so the document is
// maintained by hand in the layout swag expects.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/todos": {
            "get": {
                "tags": ["todos"],
                "summary": "List all todos",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.TodoResponse"}}}
                }
            },
            "post": {
                "tags": ["todos"],
                "summary": "Create a todo",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTodoRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TodoResponse"}},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/todos/{id}": {
            "get": {
                "tags": ["todos"],
                "summary": "Get a todo by ID",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TodoResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "tags": ["todos"],
                "summary": "Partially update a todo",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TodoResponse"}},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"}
                }
            },
            "delete": {
                "tags": ["todos"],
                "summary": "Delete a todo",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/coffee-entries": {
            "get": {
                "tags": ["coffee-entries"],
                "summary": "List all coffee entries",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CoffeeEntryResponse"}}}
                }
            },
            "post": {
                "tags": ["coffee-entries"],
                "summary": "Create a coffee entry",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCoffeeEntryRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CoffeeEntryResponse"}},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/coffee-entries/{id}": {
            "get": {
                "tags": ["coffee-entries"],
                "summary": "Get a coffee entry by ID",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CoffeeEntryResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "tags": ["coffee-entries"],
                "summary": "Partially update a coffee entry",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CoffeeEntryResponse"}},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"}
                }
            },
            "delete": {
                "tags": ["coffee-entries"],
                "summary": "Delete a coffee entry",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/hands": {
            "get": {
                "tags": ["hands"],
                "summary": "List all poker hands",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PokerHandResponse"}}}
                }
            },
            "post": {
                "tags": ["hands"],
                "summary": "Create a poker hand",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePokerHandRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.PokerHandResponse"}},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/hands/{id}": {
            "get": {
                "tags": ["hands"],
                "summary": "Get a poker hand by ID",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PokerHandResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "tags": ["hands"],
                "summary": "Partially update a poker hand",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PokerHandResponse"}},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"}
                }
            },
            "delete": {
                "tags": ["hands"],
                "summary": "Delete a poker hand",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateTodoRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "dto.TodoResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "completed": {"type": "boolean"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "dto.CreateCoffeeEntryRequest": {
            "type": "object",
            "required": ["coffee_name"],
            "properties": {
                "coffee_name": {"type": "string"},
                "roaster": {"type": "string"},
                "origin": {"type": "string"},
                "processing": {"type": "string"},
                "roast_level": {"type": "string"},
                "brewing_method": {"type": "string"},
                "rating": {"type": "number"},
                "tasting_notes": {"type": "string"},
                "date_tried": {"type": "string", "format": "date-time"}
            }
        },
        "dto.CoffeeEntryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "coffee_name": {"type": "string"},
                "roaster": {"type": "string"},
                "origin": {"type": "string"},
                "processing": {"type": "string"},
                "roast_level": {"type": "string"},
                "brewing_method": {"type": "string"},
                "rating": {"type": "number"},
                "tasting_notes": {"type": "string"},
                "date_tried": {"type": "string", "format": "date-time"}
            }
        },
        "dto.CreatePokerHandRequest": {
            "type": "object",
            "required": ["player_name"],
            "properties": {
                "player_name": {"type": "string"},
                "opponent_name": {"type": "string"},
                "stakes": {"type": "string"},
                "player_cards": {"type": "string"},
                "opponent_cards": {"type": "string"},
                "community": {"type": "object"},
                "streets": {"type": "object"},
                "total_pot": {"type": "number"},
                "notes": {"type": "string"},
                "winner": {"type": "string"}
            }
        },
        "dto.PokerHandResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "player_name": {"type": "string"},
                "opponent_name": {"type": "string"},
                "stakes": {"type": "string"},
                "player_cards": {"type": "string"},
                "opponent_cards": {"type": "string"},
                "community": {"type": "object"},
                "streets": {"type": "object"},
                "total_pot": {"type": "number"},
                "notes": {"type": "string"},
                "winner": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Coffee Journal API",
	Description:      "CRUD API for todos, coffee tasting entries and poker hands.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
