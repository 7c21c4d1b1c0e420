// seed_assessments.go generates random answer sets from the live question
// catalog and submits them to the Readiness API.
//
// Usage:
//
//	go run scripts/seed_assessments.go -api http://localhost:8700 -n 25 -seed 7
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
)

type question struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

type answer struct {
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
}

type submission struct {
	Answers []answer `json:"answers"`
}

func main() {
	apiURL := flag.String("api", "http://localhost:8700", "Readiness API base URL")
	count := flag.Int("n", 10, "number of assessments to submit")
	seed := flag.Int64("seed", 1, "random seed")
	skipRate := flag.Float64("skip", 0.1, "probability of leaving a question unanswered")
	clientID := flag.String("client", "seed", "X-Client-ID header value")
	dryRun := flag.Bool("dry-run", false, "print submissions without posting")
	flag.Parse()

	questions, err := fetchQuestions(*apiURL)
	if err != nil {
		log.Fatalf("fetch questions: %v", err)
	}
	log.Printf("loaded %d questions from %s", len(questions), *apiURL)

	rng := rand.New(rand.NewSource(*seed))
	subs := make([]submission, 0, *count)
	for i := 0; i < *count; i++ {
		var s submission
		for _, q := range questions {
			if rng.Float64() < *skipRate {
				continue
			}
			max := 4
			if q.Type != "likert" {
				max = len(q.Options) - 1
			}
			s.Answers = append(s.Answers, answer{QuestionID: q.ID, Value: rng.Intn(max + 1)})
		}
		subs = append(subs, s)
	}

	if *dryRun {
		for i, s := range subs {
			body, _ := json.Marshal(s)
			fmt.Printf("[%d] %s\n", i+1, body)
		}
		return
	}

	client := &http.Client{}
	created, skipped := 0, 0
	for i, s := range subs {
		body, _ := json.Marshal(s)
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/assessments", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip #%d: %v", i+1, err)
			skipped++
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-ID", *clientID)

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("skip #%d: %v", i+1, err)
			skipped++
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			created++
		} else {
			log.Printf("skip #%d: status %d", i+1, resp.StatusCode)
			skipped++
		}
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
}

func fetchQuestions(apiURL string) ([]question, error) {
	resp, err := http.Get(apiURL + "/api/v1/questions")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	var body struct {
		Questions []question `json:"questions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Questions, nil
}
