package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(value string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(value))
	if err != nil {
		return errors.New("address must be in host:port format")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return errors.New("port must be a number")
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-session-ttl session cookie lifetime (e.g., "15m")
//	-hash-concurrency max parallel key derivations
//	-scrypt-cost scrypt N parameter
//	-insecure-cookies drop the Secure cookie attribute (dev only)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-server-address base URL of the server (client binary)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var sessionTTL time.Duration
	var hashConcurrency int
	var scryptCost int
	var insecureCookies bool
	var requestTimeout time.Duration
	var clientServerAddress string
	var clientRequestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session cookie lifetime (e.g., 15m)")
	flag.IntVar(&hashConcurrency, "hash-concurrency", 0, "Max parallel key derivations")
	flag.IntVar(&scryptCost, "scrypt-cost", 0, "scrypt N parameter (power of two)")
	flag.BoolVar(&insecureCookies, "insecure-cookies", false, "Drop the Secure cookie attribute (dev only)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&clientServerAddress, "server-address", "", "Server base URL (client)")
	flag.DurationVar(&clientRequestTimeout, "client-request-timeout", 0, "Client request timeout")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionTTL:      sessionTTL,
			HashConcurrency: hashConcurrency,
			ScryptCost:      scryptCost,
			InsecureCookies: insecureCookies,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			ServerAddress:  clientServerAddress,
			RequestTimeout: clientRequestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
