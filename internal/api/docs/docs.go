// Package docs registers the OpenAPI description of the rental directory
// API with swag so echo-swagger can serve it under /swagger/.
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
        "/users/": {
            "get": {"tags": ["users"], "summary": "List users", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}}}},
            "post": {"tags": ["users"], "summary": "Register a new user", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Idempotency key to prevent duplicate submissions", "name": "Idempotency-Key", "in": "header"},
                    {"description": "User details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UserInput"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}}}
        },
        "/users/{id}": {
            "get": {"tags": ["users"], "summary": "Get a user by id", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}},
            "put": {"tags": ["users"], "summary": "Update a user", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UserInput"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}}
        },
        "/amenities/": {
            "get": {"tags": ["amenities"], "summary": "List amenities", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Amenity"}}}}},
            "post": {"tags": ["amenities"], "summary": "Create an amenity", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "Idempotency-Key", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AmenityInput"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Amenity"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}}}
        },
        "/amenities/{id}": {
            "get": {"tags": ["amenities"], "summary": "Get an amenity by id", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Amenity"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}},
            "put": {"tags": ["amenities"], "summary": "Update an amenity", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AmenityInput"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Amenity"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}}
        },
        "/places/": {
            "get": {"tags": ["places"], "summary": "List places", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Place"}}}}},
            "post": {"tags": ["places"], "summary": "Create a place", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "Idempotency-Key", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PlaceInput"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Place"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}}}
        },
        "/places/{id}": {
            "get": {"tags": ["places"], "summary": "Get a place with owner, amenities and reviews", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/PlaceDetail"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}},
            "put": {"tags": ["places"], "summary": "Update a place", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PlaceInput"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Place"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}}
        },
        "/places/{id}/reviews": {
            "get": {"tags": ["reviews"], "summary": "List the reviews of a place", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Review"}}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}}
        },
        "/reviews/": {
            "get": {"tags": ["reviews"], "summary": "List reviews", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Review"}}}}},
            "post": {"tags": ["reviews"], "summary": "Create a review", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "Idempotency-Key", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReviewInput"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Review"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}}}
        },
        "/reviews/{id}": {
            "get": {"tags": ["reviews"], "summary": "Get a review by id", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Review"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}},
            "put": {"tags": ["reviews"], "summary": "Update a review", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReviewInput"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Review"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}},
            "delete": {"tags": ["reviews"], "summary": "Delete a review", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}}
        }
    },
    "definitions": {
        "Error": {"type": "object", "properties": {"error": {"type": "string"}}},
        "Message": {"type": "object", "properties": {"message": {"type": "string"}}},
        "UserInput": {"type": "object", "properties": {
            "first_name": {"type": "string", "maxLength": 50}, "last_name": {"type": "string", "maxLength": 50},
            "email": {"type": "string"}, "is_admin": {"type": "boolean"}}},
        "User": {"type": "object", "properties": {
            "id": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"},
            "first_name": {"type": "string"}, "last_name": {"type": "string"}, "email": {"type": "string"}, "is_admin": {"type": "boolean"}}},
        "AmenityInput": {"type": "object", "properties": {"name": {"type": "string", "maxLength": 50}}},
        "Amenity": {"type": "object", "properties": {
            "id": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}, "name": {"type": "string"}}},
        "PlaceInput": {"type": "object", "properties": {
            "title": {"type": "string", "maxLength": 100}, "description": {"type": "string"},
            "price": {"type": "number", "minimum": 0}, "latitude": {"type": "number", "minimum": -90, "maximum": 90},
            "longitude": {"type": "number", "minimum": -180, "maximum": 180}, "owner_id": {"type": "string"},
            "amenities": {"type": "array", "items": {"type": "string"}}}},
        "Place": {"type": "object", "properties": {
            "id": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"},
            "title": {"type": "string"}, "description": {"type": "string"}, "price": {"type": "number"},
            "latitude": {"type": "number"}, "longitude": {"type": "number"}, "owner_id": {"type": "string"},
            "amenities": {"type": "array", "items": {"type": "string"}}, "reviews": {"type": "array", "items": {"type": "string"}}}},
        "PlaceDetail": {"type": "object", "properties": {
            "id": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"},
            "title": {"type": "string"}, "description": {"type": "string"}, "price": {"type": "number"},
            "latitude": {"type": "number"}, "longitude": {"type": "number"}, "owner_id": {"type": "string"},
            "owner": {"$ref": "#/definitions/User"},
            "amenities": {"type": "array", "items": {"$ref": "#/definitions/Amenity"}},
            "reviews": {"type": "array", "items": {"$ref": "#/definitions/Review"}}}},
        "ReviewInput": {"type": "object", "properties": {
            "text": {"type": "string"}, "rating": {"type": "integer", "minimum": 1, "maximum": 5},
            "user_id": {"type": "string"}, "place_id": {"type": "string"}}},
        "Review": {"type": "object", "properties": {
            "id": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"},
            "text": {"type": "string"}, "rating": {"type": "integer"}, "user_id": {"type": "string"}, "place_id": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "HBnB Rental Directory API",
	Description:      "Users, amenities, places and reviews of a short-term rental directory.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
