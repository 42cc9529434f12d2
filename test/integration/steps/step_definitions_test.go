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

	"github.com/atelier-crm/backend/internal/application/usecase/auth"
	"github.com/atelier-crm/backend/internal/application/usecase/calendar"
	"github.com/atelier-crm/backend/internal/application/usecase/client"
	"github.com/atelier-crm/backend/internal/application/usecase/dashboard"
	"github.com/atelier-crm/backend/internal/application/usecase/inventory"
	"github.com/atelier-crm/backend/internal/application/usecase/order"
	"github.com/atelier-crm/backend/internal/application/usecase/task"
	"github.com/atelier-crm/backend/internal/infra/server/router"
	"github.com/atelier-crm/backend/internal/integration/adapters"
	"github.com/atelier-crm/backend/internal/integration/cache"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/controller"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/middleware"
	"github.com/atelier-crm/backend/internal/integration/persistence"
	"github.com/atelier-crm/backend/internal/integration/persistence/model"
	"github.com/atelier-crm/backend/test/integration/mock"
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
	uri          string
	headers      map[string]string
	client       *http.Client
	response     *response
	db           *mock.Db
	serverPort   int
	accessToken  string
	refreshToken string

	currentUserID      uuid.UUID
	currentClientID    uuid.UUID
	currentOrderID     uuid.UUID
	currentTaskID      uuid.UUID
	currentInventoryID uuid.UUID
	lastID             uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testClock = mock.NewClock()
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
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"clients":        &model.ClientModel{},
			"orders":         &model.OrderModel{},
			"inventory":      &model.InventoryModel{},
			"tasks":          &model.TaskModel{},
			"email_queue":    &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Data setup steps
	ctx.Given(`^a client exists named "([^"]*)" with phone "([^"]*)"$`, test.aClientExistsNamedWithPhone)
	ctx.Given(`^an order exists for "([^"]*)" with amount "([^"]*)" due "([^"]*)"$`, test.anOrderExistsForWithAmountDue)
	ctx.Given(`^an order exists for "([^"]*)" with amount "([^"]*)" and no due date$`, test.anOrderExistsForWithAmountNoDueDate)
	ctx.Given(`^a task exists named "([^"]*)" due "([^"]*)" with status "([^"]*)"$`, test.aTaskExistsNamedDueWithStatus)
	ctx.Given(`^an inventory item exists with sku "([^"]*)" named "([^"]*)" with quantity (\d+) of type "([^"]*)"$`, test.anInventoryItemExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
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
	t.currentUserID = uuid.Nil
	t.currentClientID = uuid.Nil
	t.currentOrderID = uuid.Nil
	t.currentTaskID = uuid.Nil
	t.currentInventoryID = uuid.Nil
	t.lastID = uuid.Nil

	testClock.Reset()

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
			orderRepo := persistence.NewOrderRepository(testDB.DbConn)
			inventoryRepo := persistence.NewInventoryRepository(testDB.DbConn)
			taskRepo := persistence.NewTaskRepository(testDB.DbConn)
			calendarRepo := persistence.NewCalendarRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			calendarCache := cache.NewRedisCalendarCache(mock.NewRedis(), 60*time.Second)

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create client use cases
			createClientUseCase := client.NewCreateClientUseCase(clientRepo)
			listClientsUseCase := client.NewListClientsUseCase(clientRepo)
			updateClientUseCase := client.NewUpdateClientUseCase(clientRepo)
			deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo)

			// Create order use cases
			createOrderUseCase := order.NewCreateOrderUseCase(orderRepo, clientRepo, calendarCache)
			listOrdersUseCase := order.NewListOrdersUseCase(orderRepo)
			updateOrderUseCase := order.NewUpdateOrderUseCase(orderRepo, calendarCache)
			deleteOrderUseCase := order.NewDeleteOrderUseCase(orderRepo, calendarCache)

			// Create inventory use cases
			createInventoryUseCase := inventory.NewCreateInventoryItemUseCase(inventoryRepo)
			listInventoryUseCase := inventory.NewListInventoryItemsUseCase(inventoryRepo)
			updateInventoryUseCase := inventory.NewUpdateInventoryItemUseCase(inventoryRepo)
			deleteInventoryUseCase := inventory.NewDeleteInventoryItemUseCase(inventoryRepo)

			// Create task use cases
			createTaskUseCase := task.NewCreateTaskUseCase(taskRepo, calendarCache)
			listTasksUseCase := task.NewListTasksUseCase(taskRepo)
			updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo, calendarCache, testClock)
			deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo, calendarCache)

			// Create calendar use cases
			getMonthItemsUseCase := calendar.NewGetMonthItemsUseCase(calendarRepo, calendarCache, testClock)
			getDateItemsUseCase := calendar.NewGetDateItemsUseCase(calendarRepo)

			// Create dashboard use cases
			getOverviewUseCase := dashboard.NewGetOverviewUseCase(orderRepo, taskRepo, testClock)
			getOrderTrendsUseCase := dashboard.NewGetOrderTrendsUseCase(orderRepo, testClock)
			getInventoryBreakdownUseCase := dashboard.NewGetInventoryBreakdownUseCase(inventoryRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			}, nil)

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)

			clientController := controller.NewClientController(
				createClientUseCase,
				listClientsUseCase,
				updateClientUseCase,
				deleteClientUseCase,
			)

			orderController := controller.NewOrderController(
				createOrderUseCase,
				listOrdersUseCase,
				updateOrderUseCase,
				deleteOrderUseCase,
			)

			inventoryController := controller.NewInventoryController(
				createInventoryUseCase,
				listInventoryUseCase,
				updateInventoryUseCase,
				deleteInventoryUseCase,
			)

			taskController := controller.NewTaskController(
				createTaskUseCase,
				listTasksUseCase,
				updateTaskUseCase,
				deleteTaskUseCase,
			)

			calendarController := controller.NewCalendarController(
				getMonthItemsUseCase,
				getDateItemsUseCase,
				testClock,
			)

			dashboardController := controller.NewDashboardController(
				getOverviewUseCase,
				getOrderTrendsUseCase,
				getInventoryBreakdownUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				clientController,
				orderController,
				inventoryController,
				taskController,
				calendarController,
				dashboardController,
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

func (t *testContext) theCurrentDateIs(date string) error {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}
	// Pin mid-day so day-boundary math is unambiguous
	testClock.Set(day.Add(12 * time.Hour))
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

	now := testClock.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
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
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "atelier-crm",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "atelier-crm",
		"sub":        t.currentUserID.String(),
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
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) aClientExistsNamedWithPhone(name, phone string) error {
	clientID := uuid.New()
	t.currentClientID = clientID

	now := testClock.Now().UTC()
	clientModel := &model.ClientModel{
		ID:          clientID,
		UserID:      t.currentUserID,
		Name:        name,
		PhoneNumber: phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result := t.db.DbConn.Create(clientModel)
	return result.Error
}

func (t *testContext) anOrderExistsForWithAmountDue(customerName, amount, due string) error {
	dueDate, err := parseLocalDate(due)
	if err != nil {
		return err
	}
	return t.createOrder(customerName, amount, &dueDate)
}

func (t *testContext) anOrderExistsForWithAmountNoDueDate(customerName, amount string) error {
	return t.createOrder(customerName, amount, nil)
}

func (t *testContext) createOrder(customerName, amount string, dueDate *time.Time) error {
	amountDec, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	// Each seeded order gets its own client row unless one was set up already
	clientID := t.currentClientID
	phoneNumber := fmt.Sprintf("+%d", time.Now().UnixNano()%1_000_000_0000)
	if clientID == uuid.Nil {
		clientID = uuid.New()
		now := testClock.Now().UTC()
		clientModel := &model.ClientModel{
			ID:          clientID,
			UserID:      t.currentUserID,
			Name:        customerName,
			PhoneNumber: phoneNumber,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := t.db.DbConn.Create(clientModel).Error; err != nil {
			return err
		}
	} else {
		var clientModel model.ClientModel
		if err := t.db.DbConn.First(&clientModel, "id = ?", clientID).Error; err != nil {
			return err
		}
		phoneNumber = clientModel.PhoneNumber
	}

	orderID := uuid.New()
	t.currentOrderID = orderID

	now := testClock.Now().UTC()
	orderModel := &model.OrderModel{
		ID:             orderID,
		UserID:         t.currentUserID,
		ClientID:       clientID,
		CustomerName:   customerName,
		CustomerNumber: phoneNumber,
		Status:         "Pending",
		Amount:         amountDec,
		AmountPaid:     decimal.Zero,
		DueDate:        dueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result := t.db.DbConn.Create(orderModel)
	return result.Error
}

func (t *testContext) aTaskExistsNamedDueWithStatus(name, due, status string) error {
	dueDate, err := parseLocalDate(due)
	if err != nil {
		return err
	}

	taskID := uuid.New()
	t.currentTaskID = taskID

	now := testClock.Now().UTC()
	taskModel := &model.TaskModel{
		ID:        taskID,
		UserID:    t.currentUserID,
		TaskName:  name,
		DueDate:   dueDate,
		Priority:  "Medium",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(taskModel)
	return result.Error
}

func (t *testContext) anInventoryItemExists(sku, name string, quantity int, apparelType string) error {
	itemID := uuid.New()
	t.currentInventoryID = itemID

	now := testClock.Now().UTC()
	itemModel := &model.InventoryModel{
		ID:            itemID,
		UserID:        t.currentUserID,
		InventoryName: name,
		SKU:           sku,
		Quantity:      quantity,
		UnitPrice:     decimal.Zero,
		ApparelType:   apparelType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	result := t.db.DbConn.Create(itemModel)
	return result.Error
}

// parseLocalDate interprets a yyyy-mm-dd date as mid-day local time, matching
// how due dates are bucketed into calendar days.
func parseLocalDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s': %w", date, err)
	}
	return day.Add(12 * time.Hour), nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{client_id}}", t.currentClientID.String())
	content = strings.ReplaceAll(content, "{{order_id}}", t.currentOrderID.String())
	content = strings.ReplaceAll(content, "{{task_id}}", t.currentTaskID.String())
	content = strings.ReplaceAll(content, "{{inventory_id}}", t.currentInventoryID.String())
	content = strings.ReplaceAll(content, "{{id}}", t.lastID.String())
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

		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastID = id
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
	expectedValue = t.replacePlaceholders(expectedValue)

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

	if getFieldValue(body, field) == nil {
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
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
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
