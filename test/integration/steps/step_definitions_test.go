package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/business-manager/backend/internal/application/usecase/auth"
	"github.com/business-manager/backend/internal/application/usecase/billing"
	"github.com/business-manager/backend/internal/application/usecase/calendar"
	"github.com/business-manager/backend/internal/application/usecase/client"
	"github.com/business-manager/backend/internal/application/usecase/expense"
	"github.com/business-manager/backend/internal/application/usecase/product"
	"github.com/business-manager/backend/internal/application/usecase/task"
	"github.com/business-manager/backend/internal/infra/server/router"
	"github.com/business-manager/backend/internal/integration/adapters"
	"github.com/business-manager/backend/internal/integration/cache"
	"github.com/business-manager/backend/internal/integration/email"
	"github.com/business-manager/backend/internal/integration/entrypoint/controller"
	"github.com/business-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/business-manager/backend/internal/integration/persistence"
	"github.com/business-manager/backend/internal/integration/persistence/model"
	"github.com/business-manager/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri              string
	headers          map[string]string
	client           *http.Client
	response         *response
	db               *mock.Db
	serverPort       int
	accessToken      string
	refreshToken     string
	resetToken       string
	expiredToken     string
	currentUserID    uuid.UUID
	currentProductID uuid.UUID
	currentClientID  uuid.UUID
	currentExpenseID uuid.UUID
	currentTaskID    uuid.UUID
	currentEntryID   uuid.UUID
	lastResourceID   uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("business_manager", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"products":              &model.ProductModel{},
			"clients":               &model.ClientModel{},
			"client_subscriptions":  &model.ClientSubscriptionModel{},
			"expenses":              &model.ExpenseModel{},
			"tasks":                 &model.TaskModel{},
			"calendar_entries":      &model.CalendarEntryModel{},
			"email_queue":           &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Step(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Step(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Step(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Step(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Step(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Domain setup steps
	ctx.Step(`^a product exists named "([^"]*)" with implementation fee "([^"]*)" and monthly fee "([^"]*)"$`, test.aProductExists)
	ctx.Step(`^a client exists named "([^"]*)" subscribed to "([^"]*)" with due day (\d+)$`, test.aClientExistsSubscribedTo)
	ctx.Step(`^the monthly charge of "([^"]*)" for "([^"]*)" is "([^"]*)"$`, test.theMonthlyChargeIs)
	ctx.Step(`^an expense exists described "([^"]*)" of "([^"]*)" on "([^"]*)"$`, test.anExpenseExists)
	ctx.Step(`^a task exists titled "([^"]*)" with status "([^"]*)"$`, test.aTaskExists)
	ctx.Step(`^a calendar entry exists titled "([^"]*)" on "([^"]*)"$`, test.aCalendarEntryExists)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.currentProductID = uuid.Nil
	t.currentClientID = uuid.Nil
	t.currentExpenseID = uuid.Nil
	t.currentTaskID = uuid.Nil
	t.currentEntryID = uuid.Nil
	t.lastResourceID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			clientRepo := persistence.NewClientRepository(testDB.DbConn)
			productRepo := persistence.NewProductRepository(testDB.DbConn)
			expenseRepo := persistence.NewExpenseRepository(testDB.DbConn)
			taskRepo := persistence.NewTaskRepository(testDB.DbConn)
			calendarRepo := persistence.NewCalendarRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
			emailService := email.NewService(emailQueueRepo, "http://localhost:5173")
			overviewCache := cache.NewOverviewCache(mock.NewRedis())

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, "http://localhost:5173")
			resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
			deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

			// Create product use cases
			listProductsUseCase := product.NewListProductsUseCase(productRepo)
			createProductUseCase := product.NewCreateProductUseCase(productRepo, overviewCache)
			updateProductUseCase := product.NewUpdateProductUseCase(productRepo, overviewCache)
			deleteProductUseCase := product.NewDeleteProductUseCase(productRepo, clientRepo, overviewCache)

			// Create client use cases
			listClientsUseCase := client.NewListClientsUseCase(clientRepo)
			createClientUseCase := client.NewCreateClientUseCase(clientRepo, productRepo, overviewCache)
			updateClientUseCase := client.NewUpdateClientUseCase(clientRepo, productRepo, overviewCache)
			deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo, overviewCache)
			updateChargeStatusUseCase := client.NewUpdateChargeStatusUseCase(clientRepo, overviewCache)

			// Create expense use cases
			listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
			createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, overviewCache)
			updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, overviewCache)
			deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, overviewCache)

			// Create billing use cases
			getOverviewUseCase := billing.NewGetOverviewUseCase(clientRepo, productRepo, expenseRepo, overviewCache)
			listMonthlyChargesUseCase := billing.NewListMonthlyChargesUseCase(clientRepo, productRepo)
			queueChargeReminderUseCase := billing.NewQueueChargeReminderUseCase(clientRepo, productRepo, emailService)

			// Create task use cases
			listTasksUseCase := task.NewListTasksUseCase(taskRepo)
			createTaskUseCase := task.NewCreateTaskUseCase(taskRepo)
			updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo)
			moveTaskUseCase := task.NewMoveTaskUseCase(taskRepo)
			deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo)

			// Create calendar use cases
			listEntriesUseCase := calendar.NewListEntriesUseCase(calendarRepo)
			addEntryUseCase := calendar.NewAddEntryUseCase(calendarRepo, taskRepo)
			deleteEntryUseCase := calendar.NewDeleteEntryUseCase(calendarRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				forgotPasswordUseCase,
				resetPasswordUseCase,
			)

			userController := controller.NewUserController(deleteAccountUseCase)

			productController := controller.NewProductController(
				listProductsUseCase,
				createProductUseCase,
				updateProductUseCase,
				deleteProductUseCase,
			)

			clientController := controller.NewClientController(
				listClientsUseCase,
				createClientUseCase,
				updateClientUseCase,
				deleteClientUseCase,
				updateChargeStatusUseCase,
			)

			expenseController := controller.NewExpenseController(
				listExpensesUseCase,
				createExpenseUseCase,
				updateExpenseUseCase,
				deleteExpenseUseCase,
			)

			billingController := controller.NewBillingController(
				getOverviewUseCase,
				listMonthlyChargesUseCase,
				queueChargeReminderUseCase,
			)

			taskController := controller.NewTaskController(
				listTasksUseCase,
				createTaskUseCase,
				updateTaskUseCase,
				moveTaskUseCase,
				deleteTaskUseCase,
			)

			calendarController := controller.NewCalendarController(
				listEntriesUseCase,
				addEntryUseCase,
				deleteEntryUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				userController,
				productController,
				clientController,
				expenseController,
				billingController,
				taskController,
				calendarController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokensFor(t.currentUserID, "test@example.com")
}

// iAmLoggedInAs switches the current logged in user to the specified email,
// creating the user first when needed.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "SecurePass123!", "Test User "+email); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return fmt.Errorf("user not found: %w", err)
		}
	}

	t.currentUserID = userModel.ID
	return t.issueTokensFor(userModel.ID, email)
}

func (t *testContext) issueTokensFor(userID uuid.UUID, email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "business-manager",
		"sub":        userID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "business-manager",
		"sub":        userID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      userID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

// aProductExists creates a catalog product owned by the current user.
func (t *testContext) aProductExists(name, implementationFee, monthlyFee string) error {
	implFee, err := decimal.NewFromString(implementationFee)
	if err != nil {
		return fmt.Errorf("invalid implementation fee '%s': %w", implementationFee, err)
	}
	monthly, err := decimal.NewFromString(monthlyFee)
	if err != nil {
		return fmt.Errorf("invalid monthly fee '%s': %w", monthlyFee, err)
	}

	productID := uuid.New()
	t.currentProductID = productID

	now := time.Now().UTC()
	productModel := &model.ProductModel{
		ID:                productID,
		UserID:            t.currentUserID,
		Name:              name,
		ImplementationFee: implFee,
		MonthlyFee:        monthly,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	result := t.db.DbConn.Create(productModel)
	return result.Error
}

// aClientExistsSubscribedTo creates a client subscribed to the named product,
// copying the product's fees as the contract amounts.
func (t *testContext) aClientExistsSubscribedTo(clientName, productName string, dueDay int) error {
	var productModel model.ProductModel
	if err := t.db.DbConn.Where("name = ? AND user_id = ?", productName, t.currentUserID).First(&productModel).Error; err != nil {
		return fmt.Errorf("product '%s' not found: %w", productName, err)
	}

	clientID := uuid.New()
	t.currentClientID = clientID

	now := time.Now().UTC()
	clientModel := &model.ClientModel{
		ID:     clientID,
		UserID: t.currentUserID,
		Name:   clientName,
		Email:  strings.ToLower(strings.ReplaceAll(clientName, " ", ".")) + "@example.com",
		DueDay: dueDay,
		Subscriptions: []model.ClientSubscriptionModel{
			{
				ID:                   uuid.New(),
				ClientID:             clientID,
				ProductID:            productModel.ID,
				ImplementationAmount: productModel.ImplementationFee,
				MonthlyAmount:        productModel.MonthlyFee,
				ImplementationStatus: "pending",
				MonthlyStatus:        "to_pay",
				Position:             0,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(clientModel)
	return result.Error
}

// theMonthlyChargeIs sets the stored monthly charge status of a client's
// subscription directly in the database.
func (t *testContext) theMonthlyChargeIs(clientName, productName, status string) error {
	var clientModel model.ClientModel
	if err := t.db.DbConn.Where("name = ? AND user_id = ?", clientName, t.currentUserID).First(&clientModel).Error; err != nil {
		return fmt.Errorf("client '%s' not found: %w", clientName, err)
	}
	var productModel model.ProductModel
	if err := t.db.DbConn.Where("name = ? AND user_id = ?", productName, t.currentUserID).First(&productModel).Error; err != nil {
		return fmt.Errorf("product '%s' not found: %w", productName, err)
	}

	return t.db.DbConn.Model(&model.ClientSubscriptionModel{}).
		Where("client_id = ? AND product_id = ?", clientModel.ID, productModel.ID).
		Update("monthly_status", status).Error
}

// anExpenseExists creates an expense on the given "YYYY-MM-DD" date.
func (t *testContext) anExpenseExists(description, amount, date string) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	expenseID := uuid.New()
	t.currentExpenseID = expenseID

	now := time.Now().UTC()
	expenseModel := &model.ExpenseModel{
		ID:          expenseID,
		UserID:      t.currentUserID,
		Description: description,
		Amount:      amt,
		Category:    "Outros",
		Date:        day,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result := t.db.DbConn.Create(expenseModel)
	return result.Error
}

// aTaskExists creates a board task with the given title and column.
func (t *testContext) aTaskExists(title, status string) error {
	taskID := uuid.New()
	t.currentTaskID = taskID

	now := time.Now().UTC()
	taskModel := &model.TaskModel{
		ID:        taskID,
		UserID:    t.currentUserID,
		Title:     title,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(taskModel)
	return result.Error
}

// aCalendarEntryExists creates a calendar entry on the given "YYYY-MM-DD" date.
func (t *testContext) aCalendarEntryExists(title, date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	entryID := uuid.New()
	t.currentEntryID = entryID

	entryModel := &model.CalendarEntryModel{
		ID:        entryID,
		UserID:    t.currentUserID,
		Title:     title,
		Date:      day,
		CreatedAt: time.Now().UTC(),
	}

	result := t.db.DbConn.Create(entryModel)
	return result.Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replaceTokenPlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{product_id}}", t.currentProductID.String())
	content = strings.ReplaceAll(content, "{{client_id}}", t.currentClientID.String())
	content = strings.ReplaceAll(content, "{{expense_id}}", t.currentExpenseID.String())
	content = strings.ReplaceAll(content, "{{task_id}}", t.currentTaskID.String())
	content = strings.ReplaceAll(content, "{{entry_id}}", t.currentEntryID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastResourceID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture the created resource ID from the response if present
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastResourceID = id
			}
		}
		// Calendar additions nest the entry
		if entry, ok := responseBody["entry"].(map[string]any); ok {
			if idStr, ok := entry["id"].(string); ok {
				if id, err := uuid.Parse(idStr); err == nil {
					t.currentEntryID = id
					t.lastResourceID = id
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
