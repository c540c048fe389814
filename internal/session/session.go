package session

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Gio-ZA/task-manager-project/internal/interfaces"
	"github.com/Gio-ZA/task-manager-project/internal/models"
	"github.com/Gio-ZA/task-manager-project/internal/models/dto"
	"github.com/Gio-ZA/task-manager-project/internal/reports"
	"github.com/Gio-ZA/task-manager-project/internal/taskservice"
	"github.com/Gio-ZA/task-manager-project/internal/userservice"

	"golang.org/x/time/rate"
)

// Session drives one interactive login session: the login loop, the
// role-gated menu and the per-operation prompt flows. All task and
// credential semantics live in the services; the session only collects
// input lines, retries or abandons per operation, and renders output.
type Session struct {
	Console       interfaces.Console
	Users         interfaces.UserService
	Tasks         *taskservice.TaskService
	Reports       *reports.Generator
	Metrics       interfaces.Metrics
	Logger        interfaces.Logger
	Limiter       *rate.Limiter
	AdminUsername string

	currentUser string
	eof         bool
}

// NewSession creates a new Session instance.
func NewSession(console interfaces.Console, users interfaces.UserService,
	tasks *taskservice.TaskService, generator *reports.Generator,
	metrics interfaces.Metrics, logger interfaces.Logger,
	limiter *rate.Limiter, adminUsername string,
) *Session {
	return &Session{
		Console:       console,
		Users:         users,
		Tasks:         tasks,
		Reports:       generator,
		Metrics:       metrics,
		Logger:        logger,
		Limiter:       limiter,
		AdminUsername: adminUsername,
	}
}

// Run authenticates a user and serves menu selections until the user
// exits or input is exhausted.
func (s *Session) Run(ctx context.Context) error {
	username, ok := s.login(ctx)
	if !ok {
		return nil
	}
	s.currentUser = username

	if username == strings.ToLower(s.AdminUsername) {
		s.adminLoop(ctx)
	} else {
		s.userLoop(ctx)
	}

	s.Console.Print(MsgGoodbye)
	return nil
}

// login prompts for credentials until a pair authenticates. Attempts
// are throttled by the limiter; a missing credential store ends the
// session after being reported.
func (s *Session) login(ctx context.Context) (string, bool) {
	for {
		username, ok := s.ask(PromptLoginUsername)
		if !ok {
			return "", false
		}
		username = strings.ToLower(strings.TrimSpace(username))

		password, ok := s.ask(PromptLoginPassword)
		if !ok {
			return "", false
		}

		if !s.Limiter.Allow() {
			s.Metrics.IncCounter(LoginRateLimitedTotal)
			s.Console.Print(MsgTooManyAttempts)
			continue
		}

		s.Metrics.IncCounter(LoginAttemptsTotal)
		authenticated, err := s.Users.Authenticate(ctx, username, password)
		if err != nil {
			if errors.Is(err, interfaces.ErrStoreNotFound) {
				s.Console.Print(MsgUserFileMissing)
				return "", false
			}
			s.Logger.Error("Login failed", "error", err)
			s.Console.Printf(MsgOperationProblemFormat, err)
			return "", false
		}
		if authenticated {
			s.Metrics.IncCounter(LoginSuccessTotal)
			s.Console.Printf(MsgWelcomeFormat, titleCase(username))
			return username, true
		}

		s.Metrics.IncCounter(LoginFailedTotal)
		s.Console.Print(MsgIncorrectLogin)
	}
}

func (s *Session) adminLoop(ctx context.Context) {
	for {
		choice, ok := s.ask(AdminMenu)
		if !ok {
			return
		}
		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "":
			s.Console.Print(MsgNoOptionSelected)
		case "r":
			s.registerUser(ctx)
		case "a":
			s.addTask(ctx)
		case "va":
			s.viewAll(ctx)
		case "vm":
			s.viewMine(ctx)
		case "vc":
			s.viewCompleted(ctx)
		case "del":
			s.deleteTask(ctx)
		case "ds":
			s.displayStatistics(ctx)
		case "gr":
			s.generateReports(ctx)
		case "e":
			return
		default:
			s.Console.Print(MsgInvalidMenuOption)
		}
	}
}

func (s *Session) userLoop(ctx context.Context) {
	for {
		choice, ok := s.ask(UserMenu)
		if !ok {
			return
		}
		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "":
			s.Console.Print(MsgNoOptionSelected)
		case "a":
			s.addTask(ctx)
		case "va":
			s.viewAll(ctx)
		case "vm":
			s.viewMine(ctx)
		case "e":
			return
		default:
			s.Console.Print(MsgInvalidMenuOption)
		}
	}
}

// registerUser collects a new username and password pair. The username
// re-prompts until valid or cancelled; a password confirmation mismatch
// aborts the registration without retrying.
func (s *Session) registerUser(ctx context.Context) {
	s.Console.Print(MsgRegisterCancelHint)

	var username string
	for {
		input, ok := s.ask(PromptNewUsername)
		if !ok || s.isCancel(input) {
			return
		}
		input = strings.ToLower(strings.TrimSpace(input))

		err := s.Users.CheckUsername(ctx, input)
		if err == nil {
			username = input
			break
		}
		switch {
		case errors.Is(err, userservice.ErrInvalidUsername):
			s.Console.Print(MsgUsernameLettersOnly)
		case errors.Is(err, userservice.ErrDuplicateUsername):
			s.Console.Printf(MsgUsernameTakenFormat, input)
		default:
			s.Console.Printf(MsgOperationProblemFormat, err)
			return
		}
	}

	password, ok := s.ask(PromptNewPassword)
	if !ok || s.isCancel(password) {
		return
	}
	confirm, ok := s.ask(PromptConfirmPass)
	if !ok || s.isCancel(confirm) {
		return
	}
	if password != confirm {
		s.Console.Print(MsgPasswordMismatch)
		return
	}

	if err := s.Users.Register(ctx, username, password); err != nil {
		s.Console.Printf(MsgOperationProblemFormat, err)
		return
	}
	s.Metrics.IncCounter(UsersRegisteredTotal)
	s.Console.Printf(MsgUserRegisteredFormat, username)
}

// addTask collects the fields of a new task. Each invalid field
// re-prompts that field only; the assigned user is settled before any
// other field is requested.
func (s *Session) addTask(ctx context.Context) {
	s.Console.Print(MsgAddCancelHint)

	var assignedUser string
	for {
		input, ok := s.ask(PromptAssignedUser)
		if !ok || s.isCancel(input) {
			return
		}
		input = strings.ToLower(strings.TrimSpace(input))

		exists, err := s.Users.Exists(ctx, input)
		if err != nil {
			s.Console.Printf(MsgOperationProblemFormat, err)
			return
		}
		if exists {
			assignedUser = input
			break
		}
		s.Console.Printf(MsgUnknownAssigneeFormat, input)
	}

	title, ok := s.askNonBlank(PromptTaskTitle)
	if !ok {
		return
	}
	description, ok := s.askNonBlank(PromptTaskDesc)
	if !ok {
		return
	}

	var dueDate string
	for {
		input, ok := s.ask(PromptDueDate)
		if !ok || s.isCancel(input) {
			return
		}
		if _, err := models.ParseDate(input); err != nil {
			s.Console.Print(MsgInvalidDateAdd)
			continue
		}
		dueDate = input
		break
	}

	req := dto.AddTaskRequest{
		AssignedUser: assignedUser,
		Title:        title,
		Description:  description,
		DueDate:      dueDate,
	}
	if _, err := s.Tasks.Add(ctx, req); err != nil {
		s.Console.Printf(MsgOperationProblemFormat, err)
		return
	}
	s.Metrics.IncCounter(TasksAddedTotal)
	s.Console.Print(MsgTaskAdded)
}

// viewAll renders every task in the store.
func (s *Session) viewAll(ctx context.Context) {
	tasks, ok := s.loadTasks(ctx)
	if !ok {
		return
	}
	for _, task := range tasks {
		s.renderTask(task)
	}
}

// viewMine renders the current user's tasks with display numbers and
// serves the mark-complete / edit menu against that numbering.
func (s *Session) viewMine(ctx context.Context) {
	tasks, ok := s.loadTasks(ctx)
	if !ok {
		return
	}

	mapping := taskservice.BuildDisplayMap(tasks, taskservice.FilterAssignedTo(s.currentUser))
	if mapping.Len() == 0 {
		s.Console.Print(MsgNoTasksAssigned)
		return
	}
	for displayed, trueIndex := range mapping.TrueIndices() {
		s.Console.Printf("\nTask Number: %d\n", displayed+1)
		s.renderTask(tasks[trueIndex])
	}

	for {
		choice, ok := s.ask(MineMenu)
		if !ok || s.isCancel(choice) {
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			s.markComplete(ctx, mapping)
		case "2":
			s.editTask(ctx, mapping)
		default:
			s.Console.Print(MsgInvalidMineOption)
		}
	}
}

// viewCompleted renders every completed task.
func (s *Session) viewCompleted(ctx context.Context) {
	tasks, ok := s.loadTasks(ctx)
	if !ok {
		return
	}

	mapping := taskservice.BuildDisplayMap(tasks, taskservice.FilterCompleted)
	if mapping.Len() == 0 {
		s.Console.Print(MsgNoCompletedTasks)
		return
	}
	for _, trueIndex := range mapping.TrueIndices() {
		s.Console.Print("\n" + strings.Repeat("=", 40))
		s.renderTask(tasks[trueIndex])
	}
}

func (s *Session) markComplete(ctx context.Context, mapping *taskservice.DisplayMap) {
	index, ok := s.promptTaskNumber(mapping)
	if !ok {
		return
	}

	err := s.Tasks.MarkComplete(ctx, index)
	switch {
	case err == nil:
		s.Metrics.IncCounter(TasksCompletedTotal)
		s.Console.Print(MsgMarkedComplete)
	case errors.Is(err, taskservice.ErrAlreadyComplete):
		s.Console.Print(MsgAlreadyComplete)
	default:
		s.Console.Printf(MsgOperationProblemFormat, err)
	}
}

// editTask performs one edit attempt on one of the user's tasks.
// Completed tasks are refused before any edit prompting. A reassignment
// to an unknown user and an unparseable due date both abandon the
// attempt; only the add-task flow retries fields.
func (s *Session) editTask(ctx context.Context, mapping *taskservice.DisplayMap) {
	index, ok := s.promptTaskNumber(mapping)
	if !ok {
		return
	}

	task, err := s.Tasks.Get(ctx, index)
	if err != nil {
		s.Console.Printf(MsgOperationProblemFormat, err)
		return
	}
	if task.Completed {
		s.Console.Print(MsgCompletedNotEditable)
		return
	}

	for {
		choice, ok := s.ask(EditMenu)
		if !ok {
			return
		}
		if strings.EqualFold(strings.TrimSpace(choice), CancelSentinel) {
			s.Console.Print(MsgOperationCancelled)
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.reassignTask(ctx, index)
			return
		case "2":
			s.redateTask(ctx, index)
			return
		default:
			s.Console.Print(MsgInvalidEditOption)
		}
	}
}

func (s *Session) reassignTask(ctx context.Context, index int) {
	input, ok := s.ask(PromptEditUsername)
	if !ok {
		return
	}
	if strings.EqualFold(strings.TrimSpace(input), CancelSentinel) {
		s.Console.Print(MsgCancelledUserUpdate)
		return
	}
	newUser := strings.ToLower(strings.TrimSpace(input))

	err := s.Tasks.Reassign(ctx, index, newUser)
	switch {
	case err == nil:
		s.Metrics.IncCounter(TasksEditedTotal)
		s.Console.Print(MsgUsernameUpdated)
	case errors.Is(err, taskservice.ErrUnknownUser):
		s.Console.Print(MsgUserDoesNotExist)
	case errors.Is(err, taskservice.ErrSameAssignee):
		s.Console.Printf(MsgAlreadyAssignedFormat, newUser)
	case errors.Is(err, taskservice.ErrTaskImmutable):
		s.Console.Print(MsgCompletedNotEditable)
	default:
		s.Console.Printf(MsgOperationProblemFormat, err)
	}
}

func (s *Session) redateTask(ctx context.Context, index int) {
	input, ok := s.ask(PromptEditDueDate)
	if !ok {
		return
	}
	if strings.EqualFold(strings.TrimSpace(input), CancelSentinel) {
		s.Console.Print(MsgCancelledDateUpdate)
		return
	}

	// Unlike the add-task flow, a bad date here abandons the edit
	// attempt instead of re-prompting.
	dueDate, err := models.ParseDate(input)
	if err != nil {
		s.Console.Print(MsgInvalidDateEdit)
		return
	}

	err = s.Tasks.Redate(ctx, index, dueDate)
	switch {
	case err == nil:
		s.Metrics.IncCounter(TasksEditedTotal)
		s.Console.Print(MsgDueDateUpdated)
	case errors.Is(err, taskservice.ErrTaskImmutable):
		s.Console.Print(MsgCompletedNotEditable)
	default:
		s.Console.Printf(MsgOperationProblemFormat, err)
	}
}

// deleteTask lets the admin remove any task, addressed by the global
// display numbering over all tasks, after an explicit confirmation.
func (s *Session) deleteTask(ctx context.Context) {
	tasks, ok := s.loadTasks(ctx)
	if !ok {
		return
	}
	if len(tasks) == 0 {
		s.Console.Print(MsgNoTasksToDelete)
		return
	}

	s.Console.Print(MsgAllTasksHeader)
	mapping := taskservice.BuildDisplayMap(tasks, taskservice.FilterAll)
	for displayed, trueIndex := range mapping.TrueIndices() {
		s.Console.Printf("\nTask Number: %d\n", displayed+1)
		s.renderTask(tasks[trueIndex])
	}

	index, ok := s.promptTaskNumber(mapping)
	if !ok {
		return
	}

	s.Console.Print(MsgAboutToDelete)
	s.renderTask(tasks[index])

	for {
		input, ok := s.ask(PromptConfirmDelete)
		if !ok || s.isCancel(input) {
			return
		}
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "yes":
			if err := s.Tasks.Delete(ctx, index); err != nil {
				s.Console.Printf(MsgOperationProblemFormat, err)
				return
			}
			s.Metrics.IncCounter(TasksDeletedTotal)
			s.Console.Print(MsgTaskDeleted)
			return
		case "no":
			s.Console.Print(MsgDeletionCancelled)
			return
		default:
			s.Console.Print(MsgConfirmYesOrNo)
		}
	}
}

// displayStatistics renders both overview documents, generating them
// first when absent.
func (s *Session) displayStatistics(ctx context.Context) {
	taskDoc, userDoc, err := s.Reports.Display(ctx)
	switch {
	case err == nil:
		s.Console.Print(MsgTaskOverviewBanner)
		s.Console.Print(taskDoc)
		s.Console.Print(MsgUserOverviewBanner)
		s.Console.Print(userDoc)
	case errors.Is(err, interfaces.ErrStoreNotFound):
		s.Console.Print(MsgTaskFileMissing)
	case errors.Is(err, reports.ErrReportUnavailable):
		s.Console.Print(MsgReportReadProblem)
	default:
		s.Console.Printf(MsgOperationProblemFormat, err)
	}
}

func (s *Session) generateReports(ctx context.Context) {
	start := time.Now()
	err := s.Reports.Generate(ctx)
	switch {
	case err == nil:
		s.Metrics.IncCounter(ReportsGeneratedTotal)
		s.Metrics.ObserveHistogram(ReportDurationSeconds, time.Since(start).Seconds())
		s.Console.Print(MsgReportGenerated)
	case errors.Is(err, interfaces.ErrStoreNotFound):
		s.Console.Print(MsgTaskFileMissing)
	default:
		s.Console.Printf(MsgOperationProblemFormat, err)
	}
}

// promptTaskNumber asks for a displayed task number until the input
// resolves against the mapping or the user cancels. The retry loop is
// explicit and unbounded.
func (s *Session) promptTaskNumber(mapping *taskservice.DisplayMap) (int, bool) {
	for {
		input, ok := s.ask(PromptTaskNumber)
		if !ok {
			return 0, false
		}
		input = strings.TrimSpace(input)
		if strings.EqualFold(input, CancelSentinel) {
			s.Console.Print(MsgInputCancelled)
			return 0, false
		}

		displayed, err := strconv.Atoi(input)
		if err != nil {
			s.Console.Print(MsgEnterANumber)
			continue
		}

		index, err := mapping.Resolve(displayed)
		if err != nil {
			s.Console.Print(MsgInvalidTaskNumber)
			continue
		}
		return index, true
	}
}

// loadTasks loads the task store, reporting a missing or unreadable
// store to the user. ok is false when there is nothing to show.
func (s *Session) loadTasks(ctx context.Context) ([]models.Task, bool) {
	tasks, err := s.Tasks.List(ctx)
	if err != nil {
		if errors.Is(err, interfaces.ErrStoreNotFound) {
			s.Console.Print(MsgTaskFileMissing)
		} else {
			s.Console.Printf(MsgOperationProblemFormat, err)
		}
		return nil, false
	}
	return tasks, true
}

// askNonBlank re-prompts until the input is non-blank or cancelled.
func (s *Session) askNonBlank(label string) (string, bool) {
	for {
		input, ok := s.ask(label)
		if !ok || s.isCancel(input) {
			return "", false
		}
		if strings.TrimSpace(input) == "" {
			s.Console.Print(MsgBlankInput)
			continue
		}
		return input, true
	}
}

func (s *Session) ask(label string) (string, bool) {
	if s.eof {
		return "", false
	}
	line, err := s.Console.Prompt(label)
	if err != nil {
		s.eof = true
		return "", false
	}
	return line, true
}

// isCancel reports whether input is the cancel sentinel, printing the
// cancellation message when it is.
func (s *Session) isCancel(input string) bool {
	if strings.EqualFold(strings.TrimSpace(input), CancelSentinel) {
		s.Console.Print(MsgOperationCancelled)
		return true
	}
	return false
}
