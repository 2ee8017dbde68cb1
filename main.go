package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"weather-dashboard/config"
	"weather-dashboard/dashboard"
	"weather-dashboard/providers"
	"weather-dashboard/server"
)

var (
	cfg      *config.Config
	provider providers.Provider
)

func main() {
	// Создаем CLI команды
	var rootCmd = &cobra.Command{
		Use:   "weather",
		Short: "Погодная панель",
		Long:  "Получает прогноз на 7 дней и показывает текущую погоду, почасовой и дневной прогноз",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		SilenceUsage: true,
	}

	// Команда для запуска сервера
	var serverCmd = &cobra.Command{
		Use:   "server",
		Short: "Запуск HTTP сервера",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}

	// Команда для запроса погоды через CLI
	var getCmd = &cobra.Command{
		Use:   "get [локация]",
		Short: "Получить прогноз для локации",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fahrenheit, _ := cmd.Flags().GetBool("fahrenheit")
			output, _ := cmd.Flags().GetString("output")

			return getWeatherCLI(args[0], fahrenheit, output)
		},
	}

	getCmd.Flags().BoolP("fahrenheit", "f", false, "Температура в градусах Фаренгейта")
	getCmd.Flags().StringP("output", "o", "text", "Формат вывода (text, json)")

	// Команда для проверки источника
	var providersCmd = &cobra.Command{
		Use:   "providers",
		Short: "Показать источник прогноза и ограничение частоты",
		Run: func(cmd *cobra.Command, args []string) {
			showProviders()
		},
	}

	rootCmd.AddCommand(serverCmd, getCmd, providersCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup загружает конфигурацию и создает источник прогноза
func setup() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	vc := providers.NewVisualCrossingProvider(cfg.APIKey, cfg.BaseURL, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
	vc.Debug = cfg.Debug()
	provider = vc

	if cfg.RequestRate > 0 {
		provider = providers.NewRateLimitedProvider(vc, cfg.RequestRate, cfg.RequestBurst)
	}
	return nil
}

// startServer запускает HTTP сервер
func startServer() {
	srv := server.NewServer(provider)

	// Настройка сервера
	httpServer := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Сервер запущен на порту %s", cfg.ServerPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	<-quit
	log.Println("Завершение работы сервера...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("Ошибка при завершении работы сервера: %v", err)
	}

	log.Println("Сервер остановлен")
}

// getWeatherCLI получает прогноз через CLI
func getWeatherCLI(location string, fahrenheit bool, output string) error {
	d := dashboard.New(provider)
	d.Toggle(fahrenheit)

	tree, err := d.Submit(context.Background(), location)
	if err != nil {
		return fmt.Errorf("ошибка: %w", err)
	}

	if output == "json" {
		view, _ := d.Current()
		data, _ := json.MarshalIndent(view, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	return tree.WriteText(os.Stdout)
}

// showProviders показывает источник прогноза
func showProviders() {
	fmt.Println("📡 Источник прогноза:")
	fmt.Printf("✓ %s\n", provider.Name())
	if cfg.RequestRate > 0 {
		fmt.Printf("Ограничение: %.2f запр/с, всплеск %d\n", cfg.RequestRate, cfg.RequestBurst)
	} else {
		fmt.Println("Ограничение частоты отключено")
	}
}
