package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/fulldump/prooflines/bootstrap"
	"github.com/fulldump/prooflines/configuration"
)

type JSON = map[string]any

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

func NewClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxConnsPerHost:     1024,
			MaxIdleConnsPerHost: 1024,
			MaxIdleConns:        1024,
		},
		Timeout: 10 * time.Second,
	}
}

func CreateSession(client *http.Client, base string) string {

	resp, err := client.Post(base+"/v1/sessions", "application/json", nil)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	session := JSON{}
	err = json.NewDecoder(resp.Body).Decode(&session)
	if err != nil {
		panic(err)
	}

	id, _ := session["id"].(string)
	fmt.Println("session:", id)

	return id
}

// Action calls a row action on a session and fails hard on unexpected status.
func Action(client *http.Client, base, session, action string, body JSON) {

	payload, _ := json.Marshal(body)

	req, err := http.NewRequest(http.MethodPost, base+"/v1/sessions/"+session+":"+action, bytes.NewReader(payload))
	if err != nil {
		fmt.Println("ERROR: new request:", err.Error())
		os.Exit(3)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("ERROR: do request:", err.Error())
		os.Exit(4)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode >= 300 {
		fmt.Println("ERROR: bad status:", action, resp.Status)
		os.Exit(5)
	}
}

func StartServer(c *Config) {
	if c.Base != "" {
		return
	}

	conf := configuration.Default()
	conf.HttpAddr = "127.0.0.1:18080"
	conf.EnableCompression = false
	c.Base = "http://" + conf.HttpAddr

	start, stop := bootstrap.Bootstrap(&conf)
	cleanups = append(cleanups, stop)
	go start()
}

func Report(label string, n int64, took time.Duration) {
	fmt.Println(label+":", n)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f ops/sec\n", float64(n)/took.Seconds())
}
