package httpapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/waypost/waypost/internal/auth"
	"github.com/waypost/waypost/internal/config"
	"github.com/waypost/waypost/internal/media"
	"github.com/waypost/waypost/internal/model"
	"github.com/waypost/waypost/internal/store"

	_ "github.com/waypost/waypost/docs" // swagger docs

	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

type Server struct {
	store  store.Store
	auth   *auth.Service
	media  *media.Store
	cfg    config.Config
	logger *slog.Logger
}

func NewServer(st store.Store, authSvc *auth.Service, mediaStore *media.Store, cfg config.Config, logger *slog.Logger) *Server {
	return &Server{store: st, auth: authSvc, media: mediaStore, cfg: cfg, logger: logger}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// The browser client is served from a separate origin.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method == http.MethodOptions {
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	path := r.URL.Path

	if strings.HasPrefix(path, "/uploads/") {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.media.Dir()))).ServeHTTP(w, r)
		return
	}
	if path == "/assets/placeholder.png" {
		s.servePlaceholder(w, r)
		return
	}
	if strings.HasPrefix(path, "/swagger/") {
		httpSwagger.WrapHandler.ServeHTTP(w, r)
		return
	}

	segments := splitPath(path)

	switch {
	case len(segments) == 1 && segments[0] == "create-account":
		if r.Method == http.MethodPost {
			s.handleCreateAccount(w, r)
			return
		}
	case len(segments) == 1 && segments[0] == "login":
		if r.Method == http.MethodPost {
			s.handleLogin(w, r)
			return
		}
	case len(segments) == 1 && segments[0] == "get-user":
		if r.Method == http.MethodGet {
			s.handleGetUser(w, r)
			return
		}
	case len(segments) == 1 && segments[0] == "add-travel-story":
		if r.Method == http.MethodPost {
			s.handleAddStory(w, r)
			return
		}
	case len(segments) == 1 && segments[0] == "get-travel-story":
		if r.Method == http.MethodGet {
			s.handleListStories(w, r)
			return
		}
	case len(segments) == 1 && segments[0] == "image-upload":
		if r.Method == http.MethodPost {
			s.handleImageUpload(w, r)
			return
		}
	case len(segments) == 1 && segments[0] == "delete-image":
		if r.Method == http.MethodDelete {
			s.handleDeleteImage(w, r)
			return
		}
	case len(segments) == 2 && segments[0] == "edit-story":
		if r.Method == http.MethodPut {
			s.handleEditStory(w, r, segments[1])
			return
		}
	case len(segments) == 2 && segments[0] == "delete-story":
		if r.Method == http.MethodDelete {
			s.handleDeleteStory(w, r, segments[1])
			return
		}
	case len(segments) == 2 && segments[0] == "update-is-favorite":
		if r.Method == http.MethodPut {
			s.handleUpdateIsFavorite(w, r, segments[1])
			return
		}
	case len(segments) == 1 && segments[0] == "search":
		if r.Method == http.MethodGet {
			s.handleSearch(w, r)
			return
		}
	case len(segments) == 2 && segments[0] == "travel-stories" && segments[1] == "filter":
		if r.Method == http.MethodGet {
			s.handleFilter(w, r)
			return
		}
	case len(segments) == 1 && segments[0] == "openapi.json":
		if r.Method == http.MethodGet {
			s.serveOpenAPIJSON(w, r)
			return
		}
	}

	notFound(w)
}

// handleCreateAccount godoc
//
//	@Summary		Register a new account
//	@Description	Create a user and receive a signed access token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			account	body		object{fullName=string,email=string,password=string}	true	"Registration data"
//	@Success		201		{object}	map[string]any	"User and access token"
//	@Failure		400		{object}	map[string]any	"Missing fields or existing user"
//	@Router			/create-account [post]
func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, errors.New("all fields are required"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	user := model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedOn:    time.Now(),
	}
	// The unique index on email makes the insert the uniqueness check;
	// two concurrent registrations cannot both succeed.
	id, err := s.store.CreateUser(r.Context(), &user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, errors.New("user already exists"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	user.ID = id

	token, err := s.auth.Issue(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"error":       false,
		"user":        user,
		"accessToken": token,
		"message":     "Registration Successful",
	})
}

// handleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchange email and password for a signed access token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		object{email=string,password=string}	true	"Credentials"
//	@Success		200			{object}	map[string]any	"User and access token"
//	@Failure		400			{object}	map[string]any	"Missing fields, unknown user or bad password"
//	@Router			/login [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, errors.New("some fields are missing"))
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, errors.New("user not found"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusBadRequest, errors.New("invalid credentials"))
		return
	}

	token, err := s.auth.Issue(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"error":       false,
		"user":        user,
		"accessToken": token,
		"message":     "Login Successful",
	})
}

// handleGetUser godoc
//
//	@Summary		Get the authenticated user
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	map[string]any	"User profile"
//	@Failure		401	{object}	map[string]any	"Missing token or unknown user"
//	@Router			/get-user [get]
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, errors.New("user not found"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user":    user,
		"message": "",
	})
}

type storyRequest struct {
	Title           string          `json:"title"`
	Story           string          `json:"story"`
	VisitedLocation []string        `json:"visitedLocation"`
	ImageURL        string          `json:"imageUrl"`
	VisitedDate     json.RawMessage `json:"visitedDate"`
	IsFavorite      bool            `json:"isFavorite"`
}

// handleAddStory godoc
//
//	@Summary		Add a travel story
//	@Tags			Stories
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			story	body		object{title=string,story=string,visitedLocation=[]string,imageUrl=string,visitedDate=string}	true	"Story data"
//	@Success		201		{object}	map[string]any	"Created story"
//	@Failure		400		{object}	map[string]any	"Missing fields"
//	@Router			/add-travel-story [post]
func (s *Server) handleAddStory(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	var req storyRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	visitedDate, err := parseDate(req.VisitedDate)
	if err != nil || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Story) == "" ||
		len(req.VisitedLocation) == 0 || strings.TrimSpace(req.ImageURL) == "" {
		writeError(w, http.StatusBadRequest, errors.New("all fields are required"))
		return
	}

	story := model.Story{
		Title:            strings.TrimSpace(req.Title),
		Story:            req.Story,
		VisitedLocations: req.VisitedLocation,
		UserID:           userID,
		CreatedOn:        time.Now(),
		ImageURL:         req.ImageURL,
		VisitedDate:      visitedDate,
	}
	id, err := s.store.CreateStory(r.Context(), &story)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	story.ID = id
	writeJSON(w, http.StatusCreated, map[string]any{
		"story":   story,
		"message": "Added Successfully",
	})
}

// handleListStories godoc
//
//	@Summary		List the caller's travel stories
//	@Description	Stories owned by the authenticated user, favorites first
//	@Tags			Stories
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	map[string]any	"Stories list"
//	@Router			/get-travel-story [get]
func (s *Server) handleListStories(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	stories, err := s.store.ListStories(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stories": stories})
}

// handleEditStory godoc
//
//	@Summary		Edit a travel story
//	@Description	Full-field replace of a story owned by the caller
//	@Tags			Stories
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int	true	"Story ID"
//	@Param			story	body		object{title=string,story=string,visitedLocation=[]string,imageUrl=string,visitedDate=string,isFavorite=bool}	true	"Updated fields"
//	@Success		200		{object}	map[string]any	"Updated story"
//	@Failure		404		{object}	map[string]any	"Story not found"
//	@Router			/edit-story/{id} [put]
func (s *Server) handleEditStory(w http.ResponseWriter, r *http.Request, idStr string) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid story id"))
		return
	}
	var req storyRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	visitedDate, err := parseDate(req.VisitedDate)
	if err != nil || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Story) == "" ||
		len(req.VisitedLocation) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("all fields are required"))
		return
	}
	imageURL := strings.TrimSpace(req.ImageURL)
	if imageURL == "" {
		imageURL = s.media.PlaceholderURL()
	}

	story := model.Story{
		ID:               id,
		Title:            strings.TrimSpace(req.Title),
		Story:            req.Story,
		VisitedLocations: req.VisitedLocation,
		IsFavorite:       req.IsFavorite,
		UserID:           userID,
		ImageURL:         imageURL,
		VisitedDate:      visitedDate,
	}
	// Ownership is enforced inside the UPDATE itself; a story owned by
	// someone else is indistinguishable from a missing one.
	if err := s.store.UpdateStory(r.Context(), &story); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, errors.New("story not found"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	updated, err := s.store.GetStory(r.Context(), id, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"story":   updated,
		"message": "Story updated successfully",
	})
}

// handleDeleteStory godoc
//
//	@Summary		Delete a travel story
//	@Description	Deletes a story owned by the caller; the stored image is removed best-effort afterwards
//	@Tags			Stories
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Story ID"
//	@Success		200	{object}	map[string]any	"Success message"
//	@Failure		404	{object}	map[string]any	"Story not found"
//	@Router			/delete-story/{id} [delete]
func (s *Server) handleDeleteStory(w http.ResponseWriter, r *http.Request, idStr string) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid story id"))
		return
	}
	story, err := s.store.DeleteStory(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, errors.New("story not found"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	// Blob removal is fire-and-forget: the story row is already gone and
	// the response must not depend on the filesystem.
	go func(imageURL string) {
		if err := s.media.Delete(imageURL); err != nil && !errors.Is(err, media.ErrNotFound) {
			s.logger.Warn("failed to delete story image", "imageUrl", imageURL, "err", err)
		}
	}(story.ImageURL)

	writeJSON(w, http.StatusOK, map[string]any{"message": "Travel Story successfully deleted"})
}

// handleUpdateIsFavorite godoc
//
//	@Summary		Toggle the favorite flag
//	@Tags			Stories
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int						true	"Story ID"
//	@Param			flag	body		object{isFavorite=bool}	true	"Favorite flag"
//	@Success		200		{object}	map[string]any	"Updated story"
//	@Failure		404		{object}	map[string]any	"Story not found"
//	@Router			/update-is-favorite/{id} [put]
func (s *Server) handleUpdateIsFavorite(w http.ResponseWriter, r *http.Request, idStr string) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid story id"))
		return
	}
	var req struct {
		IsFavorite bool `json:"isFavorite"`
	}
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.store.SetStoryFavorite(r.Context(), id, userID, req.IsFavorite); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, errors.New("story not found"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	story, err := s.store.GetStory(r.Context(), id, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"story":   story,
		"message": "Updated successfully",
	})
}

// handleSearch godoc
//
//	@Summary		Search travel stories
//	@Description	Case-insensitive substring match on title or narrative, scoped to the caller
//	@Tags			Stories
//	@Produce		json
//	@Security		BearerAuth
//	@Param			query	query		string	true	"Search text"
//	@Success		200		{object}	map[string]any	"Matching stories"
//	@Failure		400		{object}	map[string]any	"Missing query"
//	@Router			/search [get]
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, errors.New("query parameter is required"))
		return
	}
	stories, err := s.store.SearchStories(r.Context(), userID, query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stories": stories})
}

// handleFilter godoc
//
//	@Summary		Filter travel stories by visited date
//	@Description	Inclusive date range on visitedDate, scoped to the caller, favorites first
//	@Tags			Stories
//	@Produce		json
//	@Security		BearerAuth
//	@Param			startDate	query		string	true	"Range start (RFC 3339 or Unix milliseconds)"
//	@Param			endDate		query		string	true	"Range end (RFC 3339 or Unix milliseconds)"
//	@Success		200			{object}	map[string]any	"Matching stories"
//	@Router			/travel-stories/filter [get]
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	start, err := parseDateString(r.URL.Query().Get("startDate"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("invalid startDate: %w", err))
		return
	}
	end, err := parseDateString(r.URL.Query().Get("endDate"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("invalid endDate: %w", err))
		return
	}
	stories, err := s.store.FilterStoriesByDate(r.Context(), userID, start, end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stories": stories})
}

// handleImageUpload godoc
//
//	@Summary		Upload an image
//	@Description	Stores the multipart "image" field and returns its retrieval URL
//	@Tags			Media
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Image file"
//	@Success		201		{object}	map[string]any	"Image URL"
//	@Failure		400		{object}	map[string]any	"No file or unsupported file"
//	@Router			/image-upload [post]
func (s *Server) handleImageUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(media.MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("no image uploaded"))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("no image uploaded"))
		return
	}
	defer file.Close()

	imageURL, err := s.media.Save(file, header.Filename, header.Size)
	if err != nil {
		if errors.Is(err, media.ErrInvalidFile) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"error":    false,
		"message":  "Image uploaded successfully",
		"imageUrl": imageURL,
	})
}

// handleDeleteImage godoc
//
//	@Summary		Delete an uploaded image
//	@Tags			Media
//	@Produce		json
//	@Param			imageUrl	query		string	true	"Image URL returned by upload"
//	@Success		200			{object}	map[string]any	"Success message"
//	@Failure		400			{object}	map[string]any	"Missing parameter"
//	@Failure		404			{object}	map[string]any	"File not found"
//	@Router			/delete-image [delete]
func (s *Server) handleDeleteImage(w http.ResponseWriter, r *http.Request) {
	imageURL := r.URL.Query().Get("imageUrl")
	if imageURL == "" {
		writeError(w, http.StatusBadRequest, errors.New("imageUrl parameter is required"))
		return
	}
	if err := s.media.Delete(imageURL); err != nil {
		if errors.Is(err, media.ErrNotFound) {
			writeError(w, http.StatusNotFound, errors.New("file not found"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"error":   false,
		"message": "File deleted successfully",
	})
}

func (s *Server) servePlaceholder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(placeholderPNG)
}

func (s *Server) serveOpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}

// requireAuth resolves the caller's identity from the Authorization
// header. A missing token is 401; a token that fails verification
// (malformed, forged or expired) is 403.
func (s *Server) requireAuth(w http.ResponseWriter, r *http.Request) (int64, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		writeError(w, http.StatusUnauthorized, errors.New("missing bearer token"))
		return 0, false
	}
	bearer := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	userID, err := s.auth.Verify(bearer)
	if err != nil {
		writeError(w, http.StatusForbidden, err)
		return 0, false
	}
	return userID, true
}

// parseDate accepts the formats clients actually send for visitedDate:
// an RFC 3339 string, a plain yyyy-mm-dd date, or Unix milliseconds.
func parseDate(raw json.RawMessage) (time.Time, error) {
	if len(raw) == 0 {
		return time.Time{}, errors.New("missing date")
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return parseDateString(asString)
	}
	var asMillis int64
	if err := json.Unmarshal(raw, &asMillis); err == nil {
		return time.UnixMilli(asMillis), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %s", string(raw))
}

func parseDateString(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("missing date")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %q", value)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": true, "message": err.Error()})
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, errors.New("not found"))
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
}

// readJSON decodes leniently: clients PUT fetched objects back with
// server-populated fields (id, userId, createdOn) still in the body.
func readJSON(body io.ReadCloser, dest any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(dest)
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
