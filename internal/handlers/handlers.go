package handlers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/HCapraz/qa-interview-prep/internal/auth"
	"github.com/HCapraz/qa-interview-prep/internal/models"
	"github.com/HCapraz/qa-interview-prep/internal/service"
)

// WebHandlers contains the HTTP handlers for every page of the app.
type WebHandlers struct {
	userService     *service.UserService
	catalogService  *service.CatalogService
	quizService     *service.QuizService
	progressService *service.ProgressService
	auth            *auth.Auth
}

// NewWebHandlers creates a new web handlers instance
func NewWebHandlers(
	userService *service.UserService,
	catalogService *service.CatalogService,
	quizService *service.QuizService,
	progressService *service.ProgressService,
	a *auth.Auth,
) *WebHandlers {
	return &WebHandlers{
		userService:     userService,
		catalogService:  catalogService,
		quizService:     quizService,
		progressService: progressService,
		auth:            a,
	}
}

// render wraps c.Render with the data every page needs: the pending flash
// notice and whether the request carries a session.
func (h *WebHandlers) render(c *fiber.Ctx, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Flash"] = popFlash(c)
	_, loggedIn := h.auth.CurrentUserID(c)
	data["LoggedIn"] = loggedIn
	return c.Render(view, data, "layouts/main")
}

func (h *WebHandlers) renderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{}, "layouts/main")
}

func (h *WebHandlers) renderServerError(c *fiber.Ctx, err error) error {
	log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{}, "layouts/main")
}

// categoryFromParams resolves the :categoryID route parameter. A malformed
// or unknown id is a not-found, never a 500.
func (h *WebHandlers) categoryFromParams(c *fiber.Ctx) (*models.Category, error) {
	id, err := strconv.Atoi(c.Params("categoryID"))
	if err != nil {
		return nil, service.ErrNotFound
	}
	return h.catalogService.GetCategory(id)
}

// HandleIndex handles GET /
func (h *WebHandlers) HandleIndex(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		return h.renderServerError(c, err)
	}
	return h.render(c, "index", fiber.Map{"Categories": categories})
}

// HandleRegisterForm handles GET /register
func (h *WebHandlers) HandleRegisterForm(c *fiber.Ctx) error {
	return h.render(c, "register", nil)
}

// HandleRegister handles POST /register
func (h *WebHandlers) HandleRegister(c *fiber.Ctx) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")

	if username == "" || email == "" || password == "" {
		setFlash(c, "All fields are required.")
		return c.Redirect("/register", fiber.StatusSeeOther)
	}

	_, err := h.userService.Register(username, email, password)
	if err == service.ErrDuplicateEmail {
		setFlash(c, "Email already registered.")
		return c.Redirect("/register", fiber.StatusSeeOther)
	}
	if err != nil {
		return h.renderServerError(c, err)
	}

	setFlash(c, "Registration successful! Please log in.")
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// HandleLoginForm handles GET /login
func (h *WebHandlers) HandleLoginForm(c *fiber.Ctx) error {
	return h.render(c, "login", nil)
}

// HandleLogin handles POST /login
func (h *WebHandlers) HandleLogin(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.userService.Authenticate(email, password)
	if err == service.ErrInvalidCredentials {
		setFlash(c, "Invalid email or password.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if err != nil {
		return h.renderServerError(c, err)
	}

	token, err := h.auth.SignToken(user.ID)
	if err != nil {
		return h.renderServerError(c, err)
	}
	h.auth.SetSessionCookie(c, token)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleLogout handles GET /logout
func (h *WebHandlers) HandleLogout(c *fiber.Ctx) error {
	h.auth.ClearSessionCookie(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleQuizCategories handles GET /quiz
func (h *WebHandlers) HandleQuizCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		return h.renderServerError(c, err)
	}
	return h.render(c, "quiz_categories", fiber.Map{"Categories": categories})
}

// HandleQuizQuestion handles GET /quiz/:categoryID
func (h *WebHandlers) HandleQuizQuestion(c *fiber.Ctx) error {
	category, err := h.categoryFromParams(c)
	if err == service.ErrNotFound {
		return h.renderNotFound(c)
	}
	if err != nil {
		return h.renderServerError(c, err)
	}

	question, err := h.quizService.PickQuestion(category.ID)
	if err == service.ErrNoQuestions {
		setFlash(c, "No questions available for this category.")
		return c.Redirect("/quiz", fiber.StatusSeeOther)
	}
	if err != nil {
		return h.renderServerError(c, err)
	}

	return h.render(c, "quiz", fiber.Map{"Category": category, "Question": question})
}

// HandleQuizSubmit handles POST /quiz/:categoryID
func (h *WebHandlers) HandleQuizSubmit(c *fiber.Ctx) error {
	category, err := h.categoryFromParams(c)
	if err == service.ErrNotFound {
		return h.renderNotFound(c)
	}
	if err != nil {
		return h.renderServerError(c, err)
	}

	questionID, err := strconv.Atoi(c.FormValue("question_id"))
	if err != nil {
		return h.renderNotFound(c)
	}
	answer := c.FormValue("answer")

	back := fmt.Sprintf("/quiz/%d", category.ID)

	isCorrect, question, err := h.quizService.SubmitAnswer(auth.UserID(c), questionID, answer)
	if err == service.ErrDuplicateSubmission {
		setFlash(c, "Answer already recorded.")
		return c.Redirect(back, fiber.StatusSeeOther)
	}
	if err == service.ErrNotFound {
		return h.renderNotFound(c)
	}
	if err != nil {
		return h.renderServerError(c, err)
	}

	if isCorrect {
		setFlash(c, "Correct!")
	} else {
		setFlash(c, "Incorrect. The correct answer is: "+question.CorrectAnswer)
	}
	return c.Redirect(back, fiber.StatusSeeOther)
}

// HandleFlashcardCategories handles GET /flashcards
func (h *WebHandlers) HandleFlashcardCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		return h.renderServerError(c, err)
	}
	return h.render(c, "flashcard_categories", fiber.Map{"Categories": categories})
}

// HandleFlashcards handles GET /flashcards/:categoryID
func (h *WebHandlers) HandleFlashcards(c *fiber.Ctx) error {
	category, err := h.categoryFromParams(c)
	if err == service.ErrNotFound {
		return h.renderNotFound(c)
	}
	if err != nil {
		return h.renderServerError(c, err)
	}

	questions, err := h.catalogService.ListQuestions(category.ID)
	if err != nil {
		return h.renderServerError(c, err)
	}
	if len(questions) == 0 {
		setFlash(c, "No flashcards available for this category.")
		return c.Redirect("/flashcards", fiber.StatusSeeOther)
	}

	return h.render(c, "flashcards", fiber.Map{"Category": category, "Questions": questions})
}

// HandleMockInterview handles GET /mock-interview
func (h *WebHandlers) HandleMockInterview(c *fiber.Ctx) error {
	questions, err := h.quizService.MockInterview()
	if err != nil {
		return h.renderServerError(c, err)
	}
	if len(questions) == 0 {
		setFlash(c, "No questions available for mock interview.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return h.render(c, "mock_interview", fiber.Map{"Questions": questions})
}

// HandleProgress handles GET /progress
func (h *WebHandlers) HandleProgress(c *fiber.Ctx) error {
	overview, err := h.progressService.Overview(auth.UserID(c))
	if err != nil {
		return h.renderServerError(c, err)
	}
	return h.render(c, "progress", fiber.Map{"Rows": overview})
}

// HandleReferenceList handles GET /reference
func (h *WebHandlers) HandleReferenceList(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		return h.renderServerError(c, err)
	}
	return h.render(c, "reference", fiber.Map{"Categories": categories})
}

// HandleReferenceCategory handles GET /reference/:categoryID
func (h *WebHandlers) HandleReferenceCategory(c *fiber.Ctx) error {
	category, err := h.categoryFromParams(c)
	if err == service.ErrNotFound {
		return h.renderNotFound(c)
	}
	if err != nil {
		return h.renderServerError(c, err)
	}

	content, err := h.catalogService.ReferenceText(category)
	if err != nil {
		return h.renderServerError(c, err)
	}

	return h.render(c, "reference_category", fiber.Map{"Category": category, "Content": content})
}

// HandleNotFound is mounted after all routes so unknown paths get the 404
// view instead of Fiber's plain-text default.
func (h *WebHandlers) HandleNotFound(c *fiber.Ctx) error {
	return h.renderNotFound(c)
}

// RegisterRoutes mounts every route on the app. Quiz, flashcards, mock
// interview, and progress require a session; index and reference are public.
func (h *WebHandlers) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.HandleIndex)

	app.Get("/register", h.HandleRegisterForm)
	app.Post("/register", h.HandleRegister)
	app.Get("/login", h.HandleLoginForm)
	app.Post("/login", h.HandleLogin)
	app.Get("/logout", h.auth.RequireAuth, h.HandleLogout)

	app.Get("/quiz", h.auth.RequireAuth, h.HandleQuizCategories)
	app.Get("/quiz/:categoryID", h.auth.RequireAuth, h.HandleQuizQuestion)
	app.Post("/quiz/:categoryID", h.auth.RequireAuth, h.HandleQuizSubmit)

	app.Get("/flashcards", h.auth.RequireAuth, h.HandleFlashcardCategories)
	app.Get("/flashcards/:categoryID", h.auth.RequireAuth, h.HandleFlashcards)

	app.Get("/mock-interview", h.auth.RequireAuth, h.HandleMockInterview)
	app.Get("/progress", h.auth.RequireAuth, h.HandleProgress)

	app.Get("/reference", h.HandleReferenceList)
	app.Get("/reference/:categoryID", h.HandleReferenceCategory)

	app.Use(h.HandleNotFound)
}
