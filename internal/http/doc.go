// Package httpapp provides the HTTP server for Waypost.
//
//	@title						Waypost API
//	@version					1.0
//	@description				A personal travel journal. Register an account, log in, and keep
//	@description				owner-scoped travel stories with photos, visited locations and dates.
//	@description
//	@description				## Authentication
//	@description
//	@description				Register or log in to receive an access token, then send it on every
//	@description				protected request:
//	@description
//	@description				```bash
//	@description				curl -X POST /create-account -d '{"fullName":"...","email":"...","password":"..."}'
//	@description				# Returns: {"accessToken": "TOKEN", ...}
//	@description				curl /get-travel-story -H "Authorization: Bearer TOKEN"
//	@description				```
//	@description
//	@description				A missing token is rejected with 401, an invalid or expired one with 403.
//	@description				Every story endpoint only ever sees the caller's own stories.
//
//	@contact.name				Waypost
//	@license.name				MIT
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token from /create-account or /login
//
//	@tag.name					Auth
//	@tag.description			Account registration, login and profile lookup.
//
//	@tag.name					Stories
//	@tag.description			Create, list, edit, delete, search and filter travel stories. Favorites sort first.
//
//	@tag.name					Media
//	@tag.description			Upload and delete story images. Uploads are served under /uploads/.
package httpapp
