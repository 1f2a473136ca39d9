package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/quiz"
	"github.com/adasgupta/skillbridge/internal/verify"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <skill>",
	Short: "Take a mastery quiz for a skill",
	Long: "Generate and take a multiple-choice quiz for one skill. A perfect score\n" +
		"marks the skill mastered; anything less leaves it untouched.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skill := args[0]
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := mastery.NewService(st)
		if svc.IsMastered(skill) {
			fmt.Printf("%q is already mastered.\n", skill)
			return nil
		}

		provider, err := newLLMProvider(ctx, st)
		if err != nil {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}
		gen := quiz.NewGenerator(provider)

		fmt.Printf("Generating quiz for %q...\n\n", skill)
		questions, err := gen.GenerateQuiz(ctx, skill, quiz.DefaultQuestionCount)
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}

		answers, err := askQuestions(questions)
		if err != nil {
			return err
		}

		outcome := quiz.Grade(skill, questions, answers)
		bridge := verify.NewBridge(svc)
		granted := bridge.ApplyOutcome(outcome)

		fmt.Printf("\nScore: %d/%d\n", outcome.Correct, outcome.Total)
		if granted {
			fmt.Printf("Perfect score — %q is now mastered.\n", skill)
		} else {
			fmt.Println("Not a perfect score; try again when ready.")
		}
		return nil
	},
}

// askQuestions runs the quiz on stdin and returns the chosen indices.
func askQuestions(questions []quiz.Question) ([]int, error) {
	reader := bufio.NewReader(os.Stdin)
	answers := make([]int, 0, len(questions))

	for i, q := range questions {
		fmt.Printf("Q%d. %s\n", i+1, q.Text)
		for j, choice := range q.Choices {
			fmt.Printf("  %d) %s\n", j+1, choice)
		}

		choice, err := readChoice(reader, len(q.Choices))
		if err != nil {
			return nil, err
		}
		answers = append(answers, choice)

		if choice == q.Answer {
			fmt.Println("Correct.")
		} else {
			fmt.Printf("Wrong — the answer is %d) %s\n", q.Answer+1, q.Choices[q.Answer])
		}
		if q.Explanation != "" {
			fmt.Println(q.Explanation)
		}
		fmt.Println()
	}
	return answers, nil
}

func readChoice(reader *bufio.Reader, count int) (int, error) {
	for {
		fmt.Printf("Answer [1-%d]: ", count)
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("read answer: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= count {
			return n - 1, nil
		}
		fmt.Println("Please enter a number in range.")
	}
}
