package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/louis833/Donnachy-Electrical/internal/notifications"
	"github.com/louis833/Donnachy-Electrical/internal/storage"
)

const (
	commandUseName              = "server"
	commandShortDescription     = "Run the contact service"
	commandLongDescription      = "Launch the contact and quote-request HTTP service"
	loggerCreationErrorMessage  = "logger"
	logEventListening           = "listening"
	logFieldAddress             = "addr"
	loggerContextOpenDatabase   = "open_db"
	loggerContextAutoMigrate    = "migrate"
	loggerContextMailTransport  = "mail_transport"
	loggerContextNotifier       = "notifier"
	loggerContextTrustedProxies = "trusted_proxies"
	loggerContextServer         = "server"

	environmentKeyApplicationAddress = "APP_ADDR"
	environmentKeyDatabaseDriver     = "DB_DRIVER"
	environmentKeyDatabaseDataSource = "DB_DSN"
	environmentKeyMailTransport      = "MAIL_TRANSPORT"
	environmentKeySMTPHost           = "SMTP_HOST"
	environmentKeySMTPPort           = "SMTP_PORT"
	environmentKeySMTPUser           = "SMTP_USER"
	environmentKeySMTPPass           = "SMTP_PASS"
	environmentKeySMTPFrom           = "SMTP_FROM"
	environmentKeyResendAPIKey       = "RESEND_API_KEY"
	environmentKeyContactEmail       = "CONTACT_EMAIL"
	environmentKeyContactPhone       = "CONTACT_PHONE"
	environmentKeyBusinessName       = "BUSINESS_NAME"
	environmentKeyStaticDirectory    = "STATIC_DIR"
	environmentKeyTrustedProxies     = "TRUSTED_PROXIES"

	defaultApplicationAddress = ":8080"
	defaultDatabaseDriver     = storage.DriverNameSQLite
	defaultDatabaseDataSource = "contacts.db"
	defaultMailTransport      = notifications.TransportNameLog
	defaultSMTPPort           = 587
	defaultSenderAddress      = "noreply@donnachyelectrical.com.au"
	defaultOwnerAddress       = "scott@donnachyelectrical.com.au"
	defaultBusinessPhone      = "0409 820 219"
	defaultBusinessName       = "Donnachy Electrical"

	readHeaderTimeoutSeconds     = 5
	unexpectedArgumentsMessage   = "unexpected command arguments"
	commandInitializationFailure = "failed to configure command"
	flagNotDefinedMessage        = "flag %s not defined"
	environmentConfigurationErr  = "failed to apply environment configuration"
)

type flagBinding struct {
	environmentKey string
	flagName       string
	defaultValue   string
	usage          string
}

var flagBindings = []flagBinding{
	{environmentKeyApplicationAddress, "app-addr", defaultApplicationAddress, "address for the HTTP server to listen on"},
	{environmentKeyDatabaseDriver, "db-driver", defaultDatabaseDriver, "database driver (sqlite or postgres)"},
	{environmentKeyDatabaseDataSource, "db-dsn", defaultDatabaseDataSource, "database connection string"},
	{environmentKeyMailTransport, "mail-transport", defaultMailTransport, "mail transport (smtp, resend or log)"},
	{environmentKeySMTPHost, "smtp-host", "", "SMTP server host"},
	{environmentKeySMTPPort, "smtp-port", fmt.Sprintf("%d", defaultSMTPPort), "SMTP server port"},
	{environmentKeySMTPUser, "smtp-user", "", "SMTP username"},
	{environmentKeySMTPPass, "smtp-pass", "", "SMTP password"},
	{environmentKeySMTPFrom, "smtp-from", defaultSenderAddress, "sender address for outgoing mail"},
	{environmentKeyResendAPIKey, "resend-api-key", "", "API key for the Resend mail transport"},
	{environmentKeyContactEmail, "contact-email", defaultOwnerAddress, "recipient address for owner notifications"},
	{environmentKeyContactPhone, "contact-phone", defaultBusinessPhone, "phone number rendered in customer confirmations"},
	{environmentKeyBusinessName, "business-name", defaultBusinessName, "business name used in messages and health output"},
	{environmentKeyStaticDirectory, "static-dir", "", "directory with the built client bundle (optional)"},
	{environmentKeyTrustedProxies, "trusted-proxies", "", "comma-separated proxy CIDRs trusted for client address resolution"},
}

// ServerConfig captures configuration needed to run the server.
type ServerConfig struct {
	ApplicationAddress     string
	DatabaseDriverName     string
	DatabaseDataSourceName string
	MailTransportName      string
	SMTPHost               string
	SMTPPort               int
	SMTPUsername           string
	SMTPPassword           string
	SenderAddress          string
	ResendAPIKey           string
	OwnerAddress           string
	BusinessPhone          string
	BusinessName           string
	StaticDirectory        string
	TrustedProxies         []string
}

// DatabaseOpener opens a database connection using the provided configuration.
type DatabaseOpener func(storage.Config) (*gorm.DB, error)

// ServerApplication constructs and executes the server command.
type ServerApplication struct {
	configurationLoader *viper.Viper
	databaseOpener      DatabaseOpener
}

// NewServerApplication creates a ServerApplication with default dependencies.
func NewServerApplication() *ServerApplication {
	return &ServerApplication{
		configurationLoader: viper.New(),
		databaseOpener:      storage.OpenDatabase,
	}
}

// WithDatabaseOpener overrides the database opener dependency.
func (application *ServerApplication) WithDatabaseOpener(databaseOpener DatabaseOpener) *ServerApplication {
	application.databaseOpener = databaseOpener
	return application
}

// Command builds the Cobra command for the server.
func (application *ServerApplication) Command() (*cobra.Command, error) {
	rootCommand := &cobra.Command{
		Use:   commandUseName,
		Short: commandShortDescription,
		Long:  commandLongDescription,
		RunE:  application.runCommand,
	}

	if configurationErr := application.configureCommand(rootCommand); configurationErr != nil {
		return nil, configurationErr
	}

	return rootCommand, nil
}

func (application *ServerApplication) configureCommand(command *cobra.Command) error {
	application.configurationLoader.AutomaticEnv()

	commandFlags := command.Flags()
	for _, binding := range flagBindings {
		application.configurationLoader.SetDefault(binding.environmentKey, binding.defaultValue)
		commandFlags.String(binding.flagName, binding.defaultValue, binding.usage)

		if bindErr := application.bindFlag(commandFlags, binding.environmentKey, binding.flagName); bindErr != nil {
			return bindErr
		}
		if environmentErr := application.applyEnvironmentConfiguration(commandFlags, binding.environmentKey, binding.flagName); environmentErr != nil {
			return environmentErr
		}
	}

	return nil
}

func (application *ServerApplication) bindFlag(flagSet *pflag.FlagSet, environmentKey string, flagName string) error {
	flag := flagSet.Lookup(flagName)
	if flag == nil {
		return fmt.Errorf(flagNotDefinedMessage, flagName)
	}

	if bindErr := application.configurationLoader.BindPFlag(environmentKey, flag); bindErr != nil {
		return bindErr
	}

	return nil
}

func (application *ServerApplication) applyEnvironmentConfiguration(flagSet *pflag.FlagSet, environmentKey string, flagName string) error {
	environmentValue, environmentFound := os.LookupEnv(environmentKey)
	if !environmentFound {
		return nil
	}

	if setErr := flagSet.Set(flagName, environmentValue); setErr != nil {
		return fmt.Errorf("%s: %w", environmentConfigurationErr, setErr)
	}

	return nil
}

func (application *ServerApplication) loadConfiguration() ServerConfig {
	loader := application.configurationLoader
	return ServerConfig{
		ApplicationAddress:     loader.GetString(environmentKeyApplicationAddress),
		DatabaseDriverName:     strings.TrimSpace(loader.GetString(environmentKeyDatabaseDriver)),
		DatabaseDataSourceName: strings.TrimSpace(loader.GetString(environmentKeyDatabaseDataSource)),
		MailTransportName:      strings.TrimSpace(loader.GetString(environmentKeyMailTransport)),
		SMTPHost:               strings.TrimSpace(loader.GetString(environmentKeySMTPHost)),
		SMTPPort:               loader.GetInt(environmentKeySMTPPort),
		SMTPUsername:           strings.TrimSpace(loader.GetString(environmentKeySMTPUser)),
		SMTPPassword:           loader.GetString(environmentKeySMTPPass),
		SenderAddress:          strings.TrimSpace(loader.GetString(environmentKeySMTPFrom)),
		ResendAPIKey:           strings.TrimSpace(loader.GetString(environmentKeyResendAPIKey)),
		OwnerAddress:           strings.TrimSpace(loader.GetString(environmentKeyContactEmail)),
		BusinessPhone:          strings.TrimSpace(loader.GetString(environmentKeyContactPhone)),
		BusinessName:           strings.TrimSpace(loader.GetString(environmentKeyBusinessName)),
		StaticDirectory:        strings.TrimSpace(loader.GetString(environmentKeyStaticDirectory)),
		TrustedProxies:         parseTrustedProxies(loader.GetString(environmentKeyTrustedProxies)),
	}
}

func parseTrustedProxies(rawValue string) []string {
	var trustedProxies []string
	for _, part := range strings.Split(rawValue, ",") {
		trimmedPart := strings.TrimSpace(part)
		if trimmedPart != "" {
			trustedProxies = append(trustedProxies, trimmedPart)
		}
	}
	return trustedProxies
}

func (application *ServerApplication) runCommand(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return fmt.Errorf("%s: %s", unexpectedArgumentsMessage, strings.Join(arguments, " "))
	}

	serverConfig := application.loadConfiguration()

	logger, loggerErr := zap.NewProduction()
	if loggerErr != nil {
		return fmt.Errorf("%s: %w", loggerCreationErrorMessage, loggerErr)
	}
	defer func() {
		_ = logger.Sync()
	}()

	database, databaseErr := application.databaseOpener(storage.Config{
		DriverName:     serverConfig.DatabaseDriverName,
		DataSourceName: serverConfig.DatabaseDataSourceName,
	})
	if databaseErr != nil {
		logger.Fatal(loggerContextOpenDatabase, zap.Error(databaseErr))
	}

	if migrateErr := storage.AutoMigrate(database); migrateErr != nil {
		logger.Fatal(loggerContextAutoMigrate, zap.Error(migrateErr))
	}

	mailer, mailerErr := notifications.NewMailer(logger, notifications.TransportConfig{
		TransportName: serverConfig.MailTransportName,
		SMTP: notifications.SMTPConfig{
			Host:     serverConfig.SMTPHost,
			Port:     serverConfig.SMTPPort,
			Username: serverConfig.SMTPUsername,
			Password: serverConfig.SMTPPassword,
		},
		ResendAPIKey: serverConfig.ResendAPIKey,
	})
	if mailerErr != nil {
		logger.Fatal(loggerContextMailTransport, zap.Error(mailerErr))
	}

	contactNotifier, notifierErr := notifications.NewContactNotifier(mailer, notifications.NotifierConfig{
		SenderAddress: serverConfig.SenderAddress,
		OwnerAddress:  serverConfig.OwnerAddress,
		BusinessName:  serverConfig.BusinessName,
		BusinessPhone: serverConfig.BusinessPhone,
	})
	if notifierErr != nil {
		logger.Fatal(loggerContextNotifier, zap.Error(notifierErr))
	}

	router := buildRouter(database, logger, serverConfig, contactNotifier)

	httpServer := &http.Server{
		Addr:              serverConfig.ApplicationAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeoutSeconds * time.Second,
	}

	logger.Info(logEventListening, zap.String(logFieldAddress, serverConfig.ApplicationAddress))
	if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		logger.Fatal(loggerContextServer, zap.Error(serveErr))
	}

	return nil
}

func main() {
	gin.SetMode(gin.ReleaseMode)

	application := NewServerApplication()
	rootCommand, commandErr := application.Command()
	if commandErr != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", commandInitializationFailure, commandErr)
		os.Exit(1)
	}

	if executeErr := rootCommand.Execute(); executeErr != nil {
		os.Exit(1)
	}
}
