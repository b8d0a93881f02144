// Package handlers wires HTTP routes to the user store and session layer.
package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"spendlog/internal/auth"
	"spendlog/internal/models"
	"spendlog/internal/store"
)

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "session"

	sessionKeyUserID = "user_id"
	sessionKeyEmail  = "user_email"
	sessionKeyName   = "user_name"

	// ContextUserKey is the gin context key for the authenticated identity.
	ContextUserKey = "auth.user"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	store store.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store store.Store) *Handlers {
	return &Handlers{store: store}
}

// redirectWithMessage sends the outcome of an operation to the next rendered
// page through the message query parameter.
func redirectWithMessage(c *gin.Context, path, message string) {
	c.Redirect(http.StatusFound, path+"?message="+url.QueryEscape(message))
}

// RequireLogin rejects anonymous requests to protected routes by redirecting
// to the login page. Session presence is the sole authentication signal.
func (h *Handlers) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		id, ok := session.Get(sessionKeyUserID).(string)
		if !ok || id == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		identity := models.SessionUser{ID: id}
		if email, ok := session.Get(sessionKeyEmail).(string); ok {
			identity.Email = email
		}
		if name, ok := session.Get(sessionKeyName).(string); ok {
			identity.Name = name
		}
		c.Set(ContextUserKey, identity)
		c.Next()
	}
}

// currentUser retrieves the identity set by RequireLogin.
func currentUser(c *gin.Context) models.SessionUser {
	if identity, ok := c.Get(ContextUserKey); ok {
		if user, ok := identity.(models.SessionUser); ok {
			return user
		}
	}
	return models.SessionUser{}
}

// LoginForm renders the login page.
func (h *Handlers) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Message": c.Query("message")})
}

// RegisterForm renders the registration page.
func (h *Handlers) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Message": c.Query("message")})
}

type registerForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Register handles the registration form submission.
func (h *Handlers) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithMessage(c, "/register", "All fields are required")
		return
	}

	// Check for an existing account first so a collision produces a friendly
	// message; the unique index on email is only a backstop.
	if _, err := h.store.FindByEmail(c.Request.Context(), form.Email); err == nil {
		redirectWithMessage(c, "/register", "User already exists")
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Printf("register: looking up email: %v", err)
		redirectWithMessage(c, "/register", "Something went wrong")
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		log.Printf("register: hashing password: %v", err)
		redirectWithMessage(c, "/register", "Something went wrong")
		return
	}

	if _, err := h.store.CreateUser(c.Request.Context(), form.Name, form.Email, hash); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			redirectWithMessage(c, "/register", "User already exists")
			return
		}
		log.Printf("register: creating user: %v", err)
		redirectWithMessage(c, "/register", "Something went wrong")
		return
	}

	redirectWithMessage(c, "/login", "Registration successful, please login")
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Login handles the login form submission. An unknown email and a wrong
// password produce the same message.
func (h *Handlers) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithMessage(c, "/login", "Invalid email or password")
		return
	}

	user, err := h.store.FindByEmail(c.Request.Context(), form.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			redirectWithMessage(c, "/login", "Invalid email or password")
			return
		}
		log.Printf("login: looking up user: %v", err)
		redirectWithMessage(c, "/login", "Something went wrong")
		return
	}

	if !auth.CheckPassword(form.Password, user.Password) {
		redirectWithMessage(c, "/login", "Invalid email or password")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID.Hex())
	session.Set(sessionKeyEmail, user.Email)
	session.Set(sessionKeyName, user.Name)
	if err := session.Save(); err != nil {
		log.Printf("login: saving session: %v", err)
		redirectWithMessage(c, "/login", "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, "/home")
}

// Logout destroys the session. A failed destroy is a hard failure rather than
// a redirect.
func (h *Handlers) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		log.Printf("logout: destroying session: %v", err)
		c.String(http.StatusInternalServerError, "Failed to log out.")
		return
	}

	redirectWithMessage(c, "/login", "Successfully logged out")
}

// Home renders the authenticated user's expense list.
func (h *Handlers) Home(c *gin.Context) {
	user, err := h.store.FindByID(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		log.Printf("home: loading user: %v", err)
		redirectWithMessage(c, "/login", "Something went wrong")
		return
	}

	var total float64
	for _, expense := range user.Expenses {
		total += expense.Amount
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Name":     user.Name,
		"Expenses": user.Expenses,
		"Total":    total,
		"Message":  c.Query("message"),
	})
}

type addExpenseForm struct {
	Description string  `form:"description" binding:"required"`
	Amount      float64 `form:"amount" binding:"required"`
}

// AddExpense appends an expense to the authenticated user's list.
func (h *Handlers) AddExpense(c *gin.Context) {
	var form addExpenseForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithMessage(c, "/home", "All fields are required")
		return
	}

	expense := models.Expense{
		ID:          uuid.NewString(),
		Description: form.Description,
		Amount:      form.Amount,
		Date:        time.Now(),
	}

	if _, err := h.store.AppendExpense(c.Request.Context(), currentUser(c).ID, expense); err != nil {
		log.Printf("add-expense: %v", err)
		redirectWithMessage(c, "/home", "Failed to add expense")
		return
	}

	c.Redirect(http.StatusFound, "/home")
}

type deleteExpenseForm struct {
	ExpenseID string `form:"expenseId" binding:"required"`
}

// DeleteExpense removes the identified expense from the authenticated user's
// list. Deleting an id that is no longer present still reports success.
func (h *Handlers) DeleteExpense(c *gin.Context) {
	var form deleteExpenseForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithMessage(c, "/home", "All fields are required")
		return
	}

	if _, err := h.store.RemoveExpense(c.Request.Context(), currentUser(c).ID, form.ExpenseID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			redirectWithMessage(c, "/home", "User not found")
			return
		}
		log.Printf("delete-expense: %v", err)
		redirectWithMessage(c, "/home", "Failed to delete expense")
		return
	}

	redirectWithMessage(c, "/home", "Expense deleted successfully")
}
