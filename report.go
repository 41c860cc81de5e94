package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

var reportHeader = []string{
	"rank", "file_name", "candidate_email", "score_percent",
	"skills_match", "experience_years", "education", "resume_quality",
	"total_years", "education_level", "relevant_skills", "missing_skills",
	"recommendation", "error",
}

// buildReportCSV renders ranked results as a CSV document, one row per
// candidate.
func buildReportCSV(results []CandidateResult) ([]byte, error) {
	buf := new(bytes.Buffer)
	cw := csv.NewWriter(buf)

	if err := cw.Write(reportHeader); err != nil {
		return nil, err
	}
	for _, res := range results {
		totalYears, eduLevel := "", ""
		if res.Profile != nil {
			totalYears = strconv.Itoa(res.Profile.Experience.TotalYears)
			eduLevel = string(res.Profile.Education.Level)
		}
		row := []string{
			strconv.Itoa(res.Rank),
			res.FileName,
			res.CandidateEmail,
			fmt.Sprintf("%.1f", res.Percent),
			fmt.Sprintf("%.2f", res.Components.SkillsMatch),
			fmt.Sprintf("%.2f", res.Components.ExperienceYears),
			fmt.Sprintf("%.2f", res.Components.Education),
			fmt.Sprintf("%.2f", res.Components.ResumeQuality),
			totalYears,
			eduLevel,
			strings.Join(res.RelevantSkills, "; "),
			strings.Join(res.MissingSkills, "; "),
			res.Recommendation,
			res.Error,
		}
		if err := cw.Write(row); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// uploadReport stores the session's CSV in the bucket next to the
// resumes it was built from.
func uploadReport(ctx context.Context, cfg *WorkerConfig, sessionID string, report []byte) error {
	key := fmt.Sprintf("reports/%s.csv", sessionID)
	return UploadToR2(ctx, cfg.S3, cfg.R2.Bucket, key, "text/csv", report)
}
