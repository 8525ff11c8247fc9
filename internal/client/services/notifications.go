package services

import "github.com/dmitrijs2005/hrmsync/internal/client/models"

// DefaultNotifications is the list a new session starts with.
func DefaultNotifications() []models.Notification {
	return []models.Notification{
		{ID: 1, Message: "EMP 1 marked present today", Time: "9:00 AM"},
		{ID: 2, Message: "Leave request from EMP 2", Time: "8:30 AM"},
		{ID: 3, Message: "New employee EMP 5 joined", Time: "Yesterday", Read: true},
	}
}

// AddNotification prepends an unread notification stamped with the current
// time of day.
func (c *Coordinator) AddNotification(message string) models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addNotificationLocked(message)
}

func (c *Coordinator) addNotificationLocked(message string) models.Notification {
	c.lastNoticeID++
	n := models.Notification{
		ID:      c.lastNoticeID,
		Message: message,
		Time:    c.now().Format("3:04 PM"),
	}
	c.notifications = append([]models.Notification{n}, c.notifications...)
	return n
}

// MarkNotificationRead reports whether a notification with id exists.
func (c *Coordinator) MarkNotificationRead(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications[i].Read = true
			return true
		}
	}
	return false
}

func (c *Coordinator) MarkAllNotificationsRead() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.notifications {
		c.notifications[i].Read = true
	}
}

func (c *Coordinator) UnreadNotifications() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, x := range c.notifications {
		if !x.Read {
			n++
		}
	}
	return n
}
