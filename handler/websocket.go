package handler

import (
	"catering_manager/database"
	"catering_manager/helper"
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

var (
	availabilityClients = make(map[string]map[*websocket.Conn]bool)
	availabilityMu      sync.Mutex

	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// AvailabilityWebSocket streams calendar changes for one month. The client
// gets the current booked slots on connect, then every accept published on
// the month's channel.
func AvailabilityWebSocket(c *websocket.Conn) {
	month := c.Params("month")
	if !monthPattern.MatchString(month) {
		c.WriteJSON(map[string]string{"error": "month must look like 2025-06"})
		c.Close()
		return
	}

	defer func() {
		availabilityMu.Lock()
		if availabilityClients[month] != nil {
			delete(availabilityClients[month], c)
		}
		availabilityMu.Unlock()
		c.Close()
	}()

	availabilityMu.Lock()
	if availabilityClients[month] == nil {
		availabilityClients[month] = make(map[*websocket.Conn]bool)
	}
	availabilityClients[month][c] = true
	availabilityMu.Unlock()

	// Initial snapshot so the calendar renders before the first change.
	start, _ := time.Parse("2006-01", month)
	end := start.AddDate(0, 1, -1)
	if booked, err := helper.GetBookedDates(database.DB, &start, &end); err == nil {
		c.WriteJSON(booked)
	}

	if database.Redis == nil {
		return
	}

	pubsub := database.Redis.Subscribe(
		context.Background(),
		fmt.Sprintf("availability:%s", month),
	)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		availabilityMu.Lock()
		for conn := range availabilityClients[month] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(availabilityClients[month], conn)
			}
		}
		availabilityMu.Unlock()
	}
}
