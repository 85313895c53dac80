// Package remote exposes the filter parameters over MQTT so a control
// surface can move cutoffs and slopes while audio is running.
package remote

import (
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/cwbudde/algo-hilocut/dsp/hilocut"
)

// Options holds the broker connection settings.
type Options struct {
	Broker   string
	Port     int
	User     string
	Password string
	Topic    string
}

// Client subscribes to parameter commands and publishes state.
type Client struct {
	client mqtt.Client
	topic  string
	params *hilocut.Parameters
}

// NewClient connects to the broker. Commands received later are written
// straight into params.
func NewClient(opts Options, params *hilocut.Parameters) (*Client, error) {
	mo := mqtt.NewClientOptions()
	mo.AddBroker(fmt.Sprintf("%s:%d", opts.Broker, opts.Port))
	mo.SetClientID(fmt.Sprintf("hilocut-%d", time.Now().Unix()))

	if opts.User != "" {
		mo.SetUsername(opts.User)
	}
	if opts.Password != "" {
		mo.SetPassword(opts.Password)
	}

	mo.SetAutoReconnect(true)
	mo.SetMaxReconnectInterval(30 * time.Second)

	c := &Client{
		topic:  opts.Topic,
		params: params,
	}

	mo.OnConnect = c.onConnect
	mo.OnConnectionLost = c.onConnectionLost
	mo.SetWill(opts.Topic+"/availability", "offline", 0, true)

	c.client = mqtt.NewClient(mo)
	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}

	return c, nil
}

func (c *Client) onConnect(client mqtt.Client) {
	log.Println("Connected to MQTT broker")

	client.Publish(c.topic+"/availability", 0, true, "online")

	for _, cmd := range Commands {
		topic := c.topic + "/" + cmd + "/set"
		if token := client.Subscribe(topic, 0, c.handleCommand); token.Wait() && token.Error() != nil {
			log.Printf("Failed to subscribe to %s: %v", topic, token.Error())
		}
	}

	c.PublishState()
}

func (c *Client) onConnectionLost(client mqtt.Client, err error) {
	log.Printf("MQTT connection lost: %v", err)
}

func (c *Client) handleCommand(client mqtt.Client, msg mqtt.Message) {
	cmd, ok := commandFromTopic(c.topic, msg.Topic())
	if !ok {
		return
	}
	if err := Apply(c.params, cmd, string(msg.Payload())); err != nil {
		log.Printf("Rejected %s: %v", msg.Topic(), err)
		return
	}
	c.PublishState()
}

// PublishState publishes the current parameters, retained, on <topic>/state.
func (c *Client) PublishState() {
	data, err := stateJSON(c.params)
	if err != nil {
		log.Printf("Failed to marshal state: %v", err)
		return
	}
	c.client.Publish(c.topic+"/state", 0, true, data)
}

// Close marks the device offline and disconnects.
func (c *Client) Close() {
	if c.client != nil {
		c.client.Publish(c.topic+"/availability", 0, true, "offline")
		c.client.Disconnect(250)
	}
}
