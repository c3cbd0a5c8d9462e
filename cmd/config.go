package cmd

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	LowStockThreshold int
}
