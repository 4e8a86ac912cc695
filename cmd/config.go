package cmd

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	UserServiceURL   string
	RabbitHost       string
	RabbitPort       string
	RabbitUser       string
	RabbitPassword   string
	JWTSecret        string
	StaleOrderMaxAge string
}
