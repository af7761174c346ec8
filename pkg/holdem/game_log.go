package holdem

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// maxLogMessages is how many messages the table keeps
const maxLogMessages = 25

// LogMessage is an entry in the table log
// If Seats is empty, it's a general statement, otherwise the message reads like "{player} did X"
type LogMessage struct {
	UUID    string    `json:"uuid"`
	Seats   []int     `json:"seats"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

type gameLog []*LogMessage

func (g gameLog) append(msg *LogMessage) gameLog {
	g = append(g, msg)
	if len(g) > maxLogMessages {
		g = g[len(g)-maxLogMessages:]
	}

	return g
}

// logf records a message in the table log and forwards it to the logger
func (c *Controller) logf(seats []int, format string, args ...interface{}) {
	msg := newLogMessage(c.clock.Now(), seats, format, args...)
	c.log = c.log.append(msg)

	logger := c.logger.WithField("round", c.round.String())
	if len(seats) == 1 {
		logger = logger.WithField("seat", seats[0])
	}

	logger.Info(msg.Message)
}

func newLogMessage(now time.Time, seats []int, format string, args ...interface{}) *LogMessage {
	if seats == nil {
		seats = []int{}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Seats:   seats,
		Message: fmt.Sprintf(format, args...),
		Time:    now,
	}
}
