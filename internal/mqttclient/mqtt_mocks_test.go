package mqttclient

import (
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type tokenMock struct {
	err error
}

func (t *tokenMock) Wait() bool                     { return true }
func (t *tokenMock) WaitTimeout(time.Duration) bool { return true }
func (t *tokenMock) Error() error                   { return t.err }
func (t *tokenMock) Done() <-chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}

type publishedMessage struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

type clientMock struct {
	mutex         sync.Mutex
	subscriptions map[string]mqtt.MessageHandler
	published     []publishedMessage
	publishErr    error
	subscribeErr  error
}

var _ mqtt.Client = (*clientMock)(nil)

func newClientMock() *clientMock {
	return &clientMock{
		subscriptions: make(map[string]mqtt.MessageHandler),
	}
}

func (c *clientMock) IsConnected() bool      { return true }
func (c *clientMock) IsConnectionOpen() bool { return true }
func (c *clientMock) Connect() mqtt.Token    { return &tokenMock{} }
func (c *clientMock) Disconnect(uint)        {}

func (c *clientMock) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.publishErr != nil {
		return &tokenMock{err: c.publishErr}
	}
	c.published = append(c.published, publishedMessage{
		topic:    topic,
		qos:      qos,
		retained: retained,
		payload:  payload.([]byte),
	})
	return &tokenMock{}
}

func (c *clientMock) Subscribe(topic string, _ byte, callback mqtt.MessageHandler) mqtt.Token {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.subscribeErr != nil {
		return &tokenMock{err: c.subscribeErr}
	}
	c.subscriptions[topic] = callback
	return &tokenMock{}
}

func (c *clientMock) SubscribeMultiple(filters map[string]byte, callback mqtt.MessageHandler) mqtt.Token {
	for topic := range filters {
		c.Subscribe(topic, filters[topic], callback)
	}
	return &tokenMock{}
}

func (c *clientMock) Unsubscribe(topics ...string) mqtt.Token {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, topic := range topics {
		delete(c.subscriptions, topic)
	}
	return &tokenMock{}
}

func (c *clientMock) AddRoute(string, mqtt.MessageHandler) {}

func (c *clientMock) OptionsReader() mqtt.ClientOptionsReader {
	return mqtt.ClientOptionsReader{}
}

type messageMock struct {
	topic   string
	payload []byte
}

var _ mqtt.Message = (*messageMock)(nil)

func (m *messageMock) Duplicate() bool   { return false }
func (m *messageMock) Qos() byte         { return 1 }
func (m *messageMock) Retained() bool    { return false }
func (m *messageMock) Topic() string     { return m.topic }
func (m *messageMock) MessageID() uint16 { return 0 }
func (m *messageMock) Payload() []byte   { return m.payload }
func (m *messageMock) Ack()              {}
