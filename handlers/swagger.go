package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Formal LaTeX Editor API — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Formal - LaTeX Editor API", "version": "1.0.0" },
  "paths": {
    "/api/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "API is running" } } } },
    "/api/documents": {
      "get": { "summary": "List documents (newest first)", "parameters": [ {"name":"skip","in":"query","schema":{"type":"integer","default":0}}, {"name":"limit","in":"query","schema":{"type":"integer","default":20}} ], "responses": { "200": { "description": "document list" } } },
      "post": { "summary": "Create a document", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["title"],"properties":{"title":{"type":"string"},"content":{"type":"string"},"template_id":{"type":"string"},"tags":{"type":"array","items":{"type":"string"}}}}}}}, "responses": { "200": { "description": "created document" }, "500": { "description": "store failure" } } }
    },
    "/api/documents/{id}": {
      "get": { "summary": "Fetch a document", "responses": { "200": { "description": "document" }, "404": { "description": "unknown id" } } },
      "put": { "summary": "Partially update a document", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"content":{"type":"string"},"tags":{"type":"array","items":{"type":"string"}},"metadata":{"type":"object"}}}}}}, "responses": { "200": { "description": "post-update document" }, "404": { "description": "unknown id" } } },
      "delete": { "summary": "Delete a document", "responses": { "200": { "description": "confirmation message" }, "404": { "description": "unknown id" } } }
    },
    "/api/templates": {
      "get": { "summary": "List templates sorted by name", "parameters": [ {"name":"category","in":"query","schema":{"type":"string"}} ], "responses": { "200": { "description": "template list" } } }
    },
    "/api/templates/{id}": {
      "get": { "summary": "Fetch a template", "responses": { "200": { "description": "template" }, "404": { "description": "unknown id" } } }
    },
    "/api/chat": {
      "post": { "summary": "AI chat (placeholder)", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"document_id":{"type":"string"},"message":{"type":"string"},"context":{"type":"object"}}}}}}, "responses": { "200": { "description": "fixed placeholder response" } } }
    },
    "/api/categories": {
      "get": { "summary": "Static template category list", "responses": { "200": { "description": "categories" } } }
    }
  }
}`
