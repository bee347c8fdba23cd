package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "HoosHelper Advisor API",
        "description": "Course planning, prerequisite validation, and advising chat for UVA students",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Course catalog"},
        {"name": "Clubs", "description": "Student organization directory"},
        {"name": "Plan", "description": "Multi-year plan validation, generation, and export"},
        {"name": "Chat", "description": "Retrieval-augmented advising chat"},
        {"name": "Scraping", "description": "Background data refresh"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "department", "in": "query", "type": "string"},
                    {"name": "level", "in": "query", "type": "integer"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "sort", "in": "query", "type": "string"},
                    {"name": "order", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/clubs": {
            "get": {
                "tags": ["Clubs"],
                "summary": "List clubs",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/clubs/recommended": {
            "get": {
                "tags": ["Clubs"],
                "summary": "Recommend clubs by interests",
                "parameters": [
                    {"name": "interests", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/plan/validate": {
            "post": {
                "tags": ["Plan"],
                "summary": "Validate a multi-year course plan",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentPlan"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ValidationResult"}},
                    "400": {"description": "Malformed plan", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/plan/generate": {
            "post": {
                "tags": ["Plan"],
                "summary": "Generate a plan for a major",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GeneratePlanRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Model error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/plan/export": {
            "post": {
                "tags": ["Plan"],
                "summary": "Export a plan as PDF",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentPlan"}}
                ],
                "responses": {
                    "200": {"description": "PDF document"}
                }
            }
        },
        "/chat": {
            "post": {
                "tags": ["Chat"],
                "summary": "Chat with the advising assistant",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/scrape/courses": {
            "post": {
                "tags": ["Scraping"],
                "summary": "Trigger course catalog scraping",
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/scrape/clubs": {
            "post": {
                "tags": ["Scraping"],
                "summary": "Trigger club directory scraping",
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/scrape/documents": {
            "post": {
                "tags": ["Scraping"],
                "summary": "Trigger reference document scraping",
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Course": {
            "type": "object",
            "properties": {
                "courseCode": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "credits": {"type": "integer"},
                "department": {"type": "string"},
                "level": {"type": "integer"},
                "prerequisites": {"type": "array", "items": {"type": "string"}},
                "semesters": {"type": "array", "items": {"type": "string"}}
            }
        },
        "Club": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "website": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "PlannedCourse": {
            "type": "object",
            "properties": {
                "courseCode": {"type": "string"},
                "year": {"type": "integer"},
                "semester": {"type": "string", "enum": ["Fall", "Spring"]}
            },
            "required": ["courseCode", "year", "semester"]
        },
        "StudentPlan": {
            "type": "object",
            "properties": {
                "courses": {"type": "array", "items": {"$ref": "#/definitions/PlannedCourse"}},
                "startYear": {"type": "integer"}
            },
            "required": ["courses"]
        },
        "Finding": {
            "type": "object",
            "properties": {
                "courseCode": {"type": "string"},
                "year": {"type": "integer"},
                "semester": {"type": "string"},
                "error": {"type": "string"},
                "severity": {"type": "string", "enum": ["error", "warning"]}
            }
        },
        "ValidationResult": {
            "type": "object",
            "properties": {
                "isValid": {"type": "boolean"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/Finding"}},
                "warnings": {"type": "array", "items": {"$ref": "#/definitions/Finding"}}
            }
        },
        "GeneratePlanRequest": {
            "type": "object",
            "properties": {
                "major": {"type": "string"},
                "startYear": {"type": "integer"},
                "interests": {"type": "string"}
            },
            "required": ["major"]
        },
        "ChatMessage": {
            "type": "object",
            "properties": {
                "role": {"type": "string", "enum": ["user", "assistant"]},
                "content": {"type": "string"}
            },
            "required": ["role", "content"]
        },
        "ChatRequest": {
            "type": "object",
            "properties": {
                "messages": {"type": "array", "items": {"$ref": "#/definitions/ChatMessage"}}
            },
            "required": ["messages"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
