// Package log encapsula o logrus com correlação por requisição: cada
// requisição HTTP recebe um correlation_id que acompanha todos os logs
// gerados durante o atendimento dela, inclusive os da conversa do bot.
package log

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger define os métodos de log usados pela aplicação
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
}

type contextKey string

// CorrelationIDKey é a chave do ID de correlação no contexto
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

// developmentFields são os campos mantidos nos logs em desenvolvimento.
// Em produção todos os campos passam; em desenvolvimento o ruído de
// rastreabilidade é cortado para o console ficar legível.
var developmentFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"from":             true,
	"text":             true,
	"metric":           true,
	"sender":           true,
}

type entryLogger struct {
	entry *logrus.Entry
}

// L é a instância global de Logger
var L Logger = &entryLogger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

func (l *entryLogger) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !developmentFields[key] {
		return l
	}
	return &entryLogger{entry: l.entry.WithField(key, value)}
}

func (l *entryLogger) WithFields(fields Fields) Logger {
	if IsDevelopment() {
		kept := make(logrus.Fields)
		for k, v := range fields {
			if developmentFields[k] {
				kept[k] = v
			}
		}
		if len(kept) == 0 {
			return l
		}
		return &entryLogger{entry: l.entry.WithFields(kept)}
	}

	return &entryLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *entryLogger) WithError(err error) Logger {
	return &entryLogger{entry: l.entry.WithError(err)}
}

// WithContext propaga o ID de correlação do contexto para o Logger
func (l *entryLogger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return l.WithField(correlationIDField, correlationID)
	}

	return l
}

func (l *entryLogger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *entryLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *entryLogger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *entryLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *entryLogger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *entryLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *entryLogger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *entryLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *entryLogger) Fatal(args ...interface{}) {
	l.entry.Fatal(args...)
}

// WithCorrelationID gera um novo ID de correlação e o grava no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID lê o ID de correlação do contexto, se houver
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um Logger já carregando o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
