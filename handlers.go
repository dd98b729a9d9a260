package main

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"xapi/xapiclient"
)

// Raw error detail stays in the logs, responses carry a generic message.
const genericErrorMessage = "An error occurred while processing the request."

type Handlers struct {
	tweetService   xapiclient.TweetService
	archiveService *ArchiveService
}

func NewHandlers(tweetService xapiclient.TweetService, archiveService *ArchiveService) *Handlers {
	return &Handlers{
		tweetService:   tweetService,
		archiveService: archiveService,
	}
}

// RequestID tags every request with a uuid so log lines can be correlated.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.New().String()
		c.Locals("request_id", id)
		c.Set("X-Request-Id", id)
		return c.Next()
	}
}

func (h *Handlers) Register(app *fiber.App) {
	app.Get("/user", h.GetUser)
	app.Get("/tweets", h.GetTweets)
	app.Get("/users/:id/following", h.GetFollowing)
	app.Get("/users/:id/tweets", h.GetUserTimeline)
	app.Get("/users/:id/lists", h.GetLists)
	app.Get("/lists/:id/tweets", h.GetListTimeline)
}

// GetUser looks a user up by handle, with or without the leading @.
func (h *Handlers) GetUser(c *fiber.Ctx) error {
	handle := strings.TrimSpace(strings.TrimPrefix(c.Query("handle"), "@"))
	if handle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "handle is required"})
	}

	response, err := h.tweetService.GetUserByName(handle)
	if err != nil {
		return h.fail(c, "get user", err)
	}
	return c.JSON(response)
}

func (h *Handlers) GetFollowing(c *fiber.Ctx) error {
	response, err := h.tweetService.GetFollowingByUserID(c.Params("id"))
	if err != nil {
		return h.fail(c, "get following", err)
	}
	return c.JSON(response)
}

// GetTweets returns the raw wire shape for a batch of tweet ids.
func (h *Handlers) GetTweets(c *fiber.Ctx) error {
	idsParam := strings.TrimSpace(c.Query("ids"))
	if idsParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ids is required"})
	}

	response, err := h.tweetService.GetTweets(strings.Split(idsParam, ","))
	if err != nil {
		return h.fail(c, "get tweets", err)
	}
	return c.JSON(response)
}

func (h *Handlers) GetUserTimeline(c *fiber.Ctx) error {
	dayRange, err := parseRangeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := c.Params("id")
	tweets, err := h.tweetService.GetTweetsByUserIDInTimeSpan(userID, dayRange)
	if err != nil {
		return h.fail(c, "get user timeline", err)
	}
	h.archive(c, SOURCE_USER_TIMELINE, userID, tweets)
	return c.JSON(tweets)
}

func (h *Handlers) GetLists(c *fiber.Ctx) error {
	response, err := h.tweetService.GetListsByUserID(c.Params("id"))
	if err != nil {
		return h.fail(c, "get lists", err)
	}
	return c.JSON(response)
}

func (h *Handlers) GetListTimeline(c *fiber.Ctx) error {
	dayRange, err := parseRangeQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	listID := c.Params("id")
	tweets, err := h.tweetService.GetTweetsByListIDInTimeSpan(listID, dayRange)
	if err != nil {
		return h.fail(c, "get list timeline", err)
	}
	h.archive(c, SOURCE_LIST_TIMELINE, listID, tweets)
	return c.JSON(tweets)
}

// parseRangeQuery validates the range query here so the core's
// fatal-on-unknown contract is never reachable from user input.
func parseRangeQuery(c *fiber.Ctx) (xapiclient.DayRange, error) {
	value := c.Query("range")
	if value == "" {
		return xapiclient.DayRangeToday, nil
	}
	return xapiclient.ParseDayRange(value)
}

// archive records fetched timeline tweets. An archive failure is logged,
// the response still succeeds.
func (h *Handlers) archive(c *fiber.Ctx, sourceType string, sourceID string, tweets []xapiclient.Tweet) {
	if h.archiveService == nil {
		return
	}
	if err := h.archiveService.SaveTimeline(sourceType, sourceID, tweets); err != nil {
		log.Printf("[%v] failed to archive %s %s: %v", c.Locals("request_id"), sourceType, sourceID, err)
	}
}

func (h *Handlers) fail(c *fiber.Ctx, operation string, err error) error {
	log.Printf("[%v] %s failed: %v", c.Locals("request_id"), operation, err)

	var transportErr *xapiclient.TransportError
	if errors.As(err, &transportErr) && transportErr.StatusCode == fiber.StatusTooManyRequests {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":    genericErrorMessage,
			"retry_in": transportErr.RateLimitInfo,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": genericErrorMessage})
}
