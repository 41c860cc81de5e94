package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/google/uuid"
	"github.com/resumeworks/resumeworker/internal/database"
	"github.com/resumeworks/resumeworker/internal/profile"
	"github.com/resumeworks/resumeworker/internal/scoring"
	"github.com/streadway/amqp"
)

// retry retries a function up to `attempts` times with exponential backoff
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

func errorResult(resume database.Resume, msg string) CandidateResult {
	return CandidateResult{
		ResumeID:      resume.ID,
		FileName:      resume.OriginalFilename,
		Result:        scoring.Result{Recommendation: scoring.RecommendationNone},
		IsErrorResult: true,
		Error:         msg,
	}
}

// resolveRequirements prefers the structured requirements attached to the
// session and falls back to deriving them from the description text.
func resolveRequirements(currentSession Session) scoring.Requirements {
	if currentSession.Requirements != nil && !currentSession.Requirements.IsZero() {
		return *currentSession.Requirements
	}
	return scoring.DeriveRequirements(currentSession.JobDescription)
}

// hydrateSession completes a slim queue message (id only) from the
// sessions table. Messages that already carry the job fields pass through.
func hydrateSession(ctx context.Context, workerConfig *WorkerConfig, currentSession Session) (Session, error) {
	if currentSession.JobTitle != "" || currentSession.JobDescription != "" {
		return currentSession, nil
	}

	row, err := workerConfig.DB.GetSessionByID(ctx, currentSession.ID)
	if err != nil {
		return currentSession, fmt.Errorf("error loading session: %v, err: %v", currentSession.ID, err)
	}
	currentSession.CreatedAt = row.CreatedAt
	currentSession.Name = row.Name
	currentSession.UserID = row.UserID
	currentSession.Status = row.Status
	currentSession.JobTitle = row.JobTitle
	currentSession.CompanyName = row.CompanyName
	currentSession.JobDescription = row.JobDescription

	if len(row.Requirements) > 0 {
		reqs := &scoring.Requirements{}
		if err := json.Unmarshal(row.Requirements, reqs); err == nil && !reqs.IsZero() {
			currentSession.Requirements = reqs
		}
	}
	return currentSession, nil
}

// screenResume downloads, extracts and scores a single resume. Failures
// come back as error entries so one bad file never sinks the session.
func screenResume(ctx context.Context, workerConfig *WorkerConfig, resume database.Resume, reqs scoring.Requirements) CandidateResult {
	// ✅ Retry downloading file (network failures are transient)
	fileBytes, err := retry(3, func() ([]byte, error) {
		return DownloadFromR2(ctx, workerConfig.S3, workerConfig.R2.Bucket, resume.ObjectKey)
	})
	if err != nil {
		log.Printf("⚠️ Failed to download %s after retries: %v", resume.ObjectKey, err)
		return errorResult(resume, fmt.Sprintf("file download error: %v", err))
	}

	resumeText, err := ExtractResumeText(resume.Mime, fileBytes)
	if err != nil {
		log.Printf("⚠️ Text extraction failed for %s: %v", resume.ObjectKey, err)
		return errorResult(resume, fmt.Sprintf("text extraction error: %v", err))
	}

	prof := profile.Build(resumeText)
	return CandidateResult{
		ResumeID:       resume.ID,
		FileName:       resume.OriginalFilename,
		CandidateEmail: prof.Contact.Email,
		Result:         scoring.Evaluate(prof, reqs),
		Profile:        prof,
		resumeText:     resumeText,
	}
}

// reviewCandidates runs the optional AI pass over ranked results, best
// candidates first. One agent session covers the whole batch so earlier
// verdicts stay in context. Verdict failures are logged and skipped.
func reviewCandidates(ctx context.Context, workerConfig *WorkerConfig, currentSession Session, results []CandidateResult) {
	if workerConfig.Reviewer == nil {
		return
	}
	userID := currentSession.UserID.String()
	sessionID := currentSession.ID.String()

	if err := workerConfig.Reviewer.OpenSession(ctx, userID, sessionID); err != nil {
		log.Printf("⚠️ Failed to open reviewer session %s: %v", sessionID, err)
		return
	}
	defer func() {
		if err := workerConfig.Reviewer.CloseSession(ctx, userID, sessionID); err != nil {
			log.Printf("⚠️ Failed to delete reviewer session %s: %v", sessionID, err)
		}
	}()

	for i := range results {
		if results[i].IsErrorResult {
			continue
		}
		msg := reviewMessage(currentSession, results[i])

		// ✅ Retry the AI agent stream separately (in case of transient agent failures)
		verdict, err := retry(2, func() (*ReviewerVerdict, error) {
			return workerConfig.Reviewer.Review(ctx, userID, sessionID, msg)
		})
		if err != nil {
			log.Printf("⚠️ Reviewer failed for %s after retries: %v", results[i].FileName, err)
			continue
		}
		results[i].Review = verdict
	}
}

// rankCandidates orders results best first and assigns one-based ranks.
// Error entries sink below every scored candidate, and filename breaks
// score ties so reruns produce the same ordering.
func rankCandidates(results []CandidateResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.IsErrorResult != b.IsErrorResult {
			return !a.IsErrorResult
		}
		if a.Overall != b.Overall {
			return a.Overall > b.Overall
		}
		return a.FileName < b.FileName
	})
	for i := range results {
		results[i].Rank = i + 1
	}
}

// screenSession runs the full pipeline for all resumes in a session:
// download, text extraction, profile build, scoring, ranking, the
// optional AI review, DB persistence and the CSV report export.
func screenSession(currentSession Session, workerConfig *WorkerConfig) error {
	ctx := context.Background()
	// get resumes in session
	resumes, err := workerConfig.DB.GetResumesBySession(ctx, currentSession.ID)
	if err != nil {
		return fmt.Errorf("error getting resumes for session: %v, err: %v", currentSession.ID, err)
	}

	reqs := resolveRequirements(currentSession)

	results := &ResultSet{
		SessionID: currentSession.ID,
		Results:   make([]CandidateResult, len(resumes)),
	}

	// screen resumes concurrently, each goroutine owns one slot
	wp := workerpool.New(workerConfig.ResumeConcurrency)
	for i, resume := range resumes {
		wp.Submit(func() {
			results.Results[i] = screenResume(ctx, workerConfig, resume, reqs)
		})
	}
	wp.StopWait()

	rankCandidates(results.Results)
	reviewCandidates(ctx, workerConfig, currentSession, results.Results)
	log.Println("session id: " + currentSession.ID.String() + " screened")

	// save final result to db
	resultsJSON, err := json.Marshal(results.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal analyses results: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.CreateOrUpdateAnalysesResults(ctx, database.CreateOrUpdateAnalysesResultsParams{
			Results:   resultsJSON,
			SessionID: results.SessionID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save screening results after retries: %w", err)
	}

	// the report is a convenience export, failures never fail the session
	report, err := buildReportCSV(results.Results)
	if err != nil {
		log.Printf("⚠️ Failed to build report for %s: %v", currentSession.ID, err)
		return nil
	}
	if err := uploadReport(ctx, workerConfig, currentSession.ID.String(), report); err != nil {
		log.Printf("⚠️ Failed to upload report for %s: %v", currentSession.ID, err)
	}

	return nil
}

func setSessionStatus(workerConfig *WorkerConfig, id uuid.UUID, status, message string) {
	err := workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
		Status: status,
		ID:     id,
	})
	if err != nil {
		log.Printf("error updating session status to %q for session_id: %v. err: %v", status, id, err)
	}

	update := StatusUpdate{
		SessionID: id,
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
	}
	if err := publishSessionUpdate(workerConfig.RabbitConn, update); err != nil {
		log.Println("failed to publish update:", err)
	}
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	//    to consume message on the queue
	conn, err := amqp.Dial(workerConfig.RabbitURL)
	if err != nil {
		log.Fatal("error dialling rabbitmq: " + err.Error())
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel: " + err.Error())
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		"sessions", // queue name
		true,       // durable (survives broker restarts)
		false,      // auto-delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		"sessions", // queue name
		"",         // consumer tag
		true,       // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	for msg := range msgs {
		currentSession := Session{}
		if err := json.Unmarshal(msg.Body, &currentSession); err != nil {
			log.Printf("error unmarshalling message body. err: %v", err)
			setSessionStatus(workerConfig, currentSession.ID, "failed", "analysis failed")
			continue
		}
		log.Printf("Worker %d processing session. session_id: %s", id+1, currentSession.ID)

		currentSession, err := hydrateSession(context.Background(), workerConfig, currentSession)
		if err != nil {
			log.Printf("error hydrating session_id: %v. err: %v", currentSession.ID, err)
			setSessionStatus(workerConfig, currentSession.ID, "failed", "analysis failed")
			continue
		}

		// producers publish at least once; a completed session whose
		// results are already stored is a duplicate delivery
		if currentSession.Status == "completed" {
			if _, err := workerConfig.DB.GetAnalysesResultsBySession(context.Background(), currentSession.ID); err == nil {
				log.Printf("session_id: %s already screened, skipping", currentSession.ID)
				setSessionStatus(workerConfig, currentSession.ID, "completed", "analysis completed")
				continue
			}
		}
		setSessionStatus(workerConfig, currentSession.ID, "processing", "analysis started")

		if err := screenSession(currentSession, workerConfig); err != nil {
			log.Printf("error screening session_id: %v. err: %v", currentSession.ID, err)
			setSessionStatus(workerConfig, currentSession.ID, "failed", "analysis failed")
			continue
		}
		setSessionStatus(workerConfig, currentSession.ID, "completed", "analysis completed")
	}

}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		log.Println("worker id ", i+1, "started")
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish

}
