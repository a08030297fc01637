package mqttclient

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

const (
	connectTimeout       = 10 * time.Second
	connectRetryInterval = 5 * time.Second
)

type NewClientParams struct {
	BrokerURL string
	ClientID  string
	// OnConnect runs on every (re)connect, subscriptions go here so they
	// survive a broker restart
	OnConnect mqtt.OnConnectHandler
}

func NewClient(params NewClientParams) mqtt.Client {
	opts := mqtt.NewClientOptions().
		AddBroker(params.BrokerURL).
		SetClientID(params.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(connectRetryInterval).
		SetConnectTimeout(connectTimeout)

	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Errorf("mqtt connection to %s lost: %s", params.BrokerURL, err)
	})
	opts.SetReconnectingHandler(func(_ mqtt.Client, _ *mqtt.ClientOptions) {
		log.Warnf("mqtt reconnecting to %s ...", params.BrokerURL)
	})
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		log.Infof("mqtt connected to %s", params.BrokerURL)
		if params.OnConnect != nil {
			params.OnConnect(client)
		}
	})

	return mqtt.NewClient(opts)
}

// Connect kicks off the connection attempt. An unreachable broker is not
// fatal: retrying is enabled, so the client keeps trying in the background
// while the HTTP API stays up.
func Connect(client mqtt.Client) {
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		log.Warnf("mqtt broker not reachable yet, will keep connecting in the background")
		return
	}
	if err := token.Error(); err != nil {
		log.Errorf("mqtt connect: %s", err)
	}
}
