// Package logging defines the minimal Logger interface consumed across the
// module plus slog-backed implementations. See logger.go for the QuestLogger
// contextual helpers.
package logging
