package session

var (
	ReportDurationSecondsBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
)

const (
	// CancelSentinel is the reserved input value every prompt of a
	// multi-step operation recognizes to abort back to the menu.
	CancelSentinel = "x"

	// Menus
	AdminMenu = `Select one of the following options:
    r - register a user
    a - add task
    va - view all tasks
    vm - view my tasks
    vc - view completed tasks
    del - delete tasks
    ds - display statistics
    gr - generate reports
    e - exit
    : `
	UserMenu = `Select one of the following options:
    a - add task
    va - view all tasks
    vm - view my tasks
    e - exit
    : `
	MineMenu = `
Select what you would like to do:
1 - Mark a task as complete
2 - Edit a task
x - Exit
: `
	EditMenu = `
What would you like to edit?
1 - Username assigned to task
2 - Due date
x - Cancel
: `

	// Prompts
	PromptLoginUsername = "Enter user name: "
	PromptLoginPassword = "Enter your password: "
	PromptNewUsername   = "Enter new username: "
	PromptNewPassword   = "Enter a password: "
	PromptConfirmPass   = "Confirm password: "
	PromptAssignedUser  = "Enter the username of the person the task is assigned to: "
	PromptTaskTitle     = "Enter the title of the task: "
	PromptTaskDesc      = "Enter a description of the task: "
	PromptDueDate       = "Enter the due date of the task (e.g., 06 Oct 2025): "
	PromptTaskNumber    = "Enter the task number (or 'x' to cancel): "
	PromptEditUsername  = "Enter the new username: "
	PromptEditDueDate   = "Enter the new due date (DD MMM YYYY): "
	PromptConfirmDelete = "Are you sure you want to delete this task? (yes/no): "

	// Messages
	MsgOperationCancelled     = "Operation cancelled."
	MsgInputCancelled         = "Input cancelled."
	MsgNoOptionSelected       = "No option selected"
	MsgInvalidMenuOption      = "You have entered an invalid input. Please try again"
	MsgGoodbye                = "Goodbye!!!"
	MsgIncorrectLogin         = "Incorrect username or password. Please try again."
	MsgTooManyAttempts        = "Too many login attempts. Please try again later."
	MsgWelcomeFormat          = "Welcome %s!\n"
	MsgUserFileMissing        = "The user file does not exist."
	MsgTaskFileMissing        = "The tasks file does not exist."
	MsgRegisterCancelHint     = "Please type 'x' at any time to cancel registration.\n"
	MsgAddCancelHint          = "Please type 'x' at any time to cancel.\n"
	MsgUsernameLettersOnly    = "Username must only contain letters."
	MsgUsernameTakenFormat    = "%s already exists. Please create a new username\n"
	MsgPasswordMismatch       = "Password confirmation does not match. Registration failed."
	MsgUserRegisteredFormat   = "User '%s' registered successfully.\n"
	MsgUnknownAssigneeFormat  = "User '%s' does not exist. Please enter a valid username.\n"
	MsgBlankInput             = "Input cannot be blank"
	MsgInvalidDateAdd         = "Invalid date format. Please enter the date in DD MMM YYYY format."
	MsgTaskAdded              = "Task added successfully."
	MsgNoTasksAssigned        = "You have no tasks assigned."
	MsgEnterANumber           = "Invalid input. Please enter a number."
	MsgInvalidTaskNumber      = "Invalid task number. Please try again."
	MsgInvalidMineOption      = "Invalid option. Please choose 1, 2, or x."
	MsgInvalidEditOption      = "Invalid option. Please enter 1, 2, or x."
	MsgAlreadyComplete        = "This task is already marked as complete."
	MsgMarkedComplete         = "Task marked as complete."
	MsgCompletedNotEditable   = "Completed tasks cannot be edited."
	MsgCancelledUserUpdate    = "Cancelled username update."
	MsgCancelledDateUpdate    = "Cancelled due date update."
	MsgUserDoesNotExist       = "User does not exist."
	MsgAlreadyAssignedFormat  = "The task is already assigned to '%s'. No changes made.\n"
	MsgUsernameUpdated        = "Username updated."
	MsgInvalidDateEdit        = "Invalid date format. Use DD MMM YYYY."
	MsgDueDateUpdated         = "Due date updated."
	MsgNoTasksToDelete        = "No tasks available to delete."
	MsgAllTasksHeader         = "\nAll Tasks:"
	MsgAboutToDelete          = "\nYou are about to delete the following task:"
	MsgTaskDeleted            = "Task deleted successfully."
	MsgDeletionCancelled      = "Task deletion cancelled."
	MsgConfirmYesOrNo         = "Invalid input. Please type 'yes' or 'no'"
	MsgNoCompletedTasks       = "No completed tasks found."
	MsgTaskOverviewBanner     = "\n====== Task Overview ======\n"
	MsgUserOverviewBanner     = "\n====== User Overview ======\n"
	MsgReportReadProblem      = "Error: Problem reading the report files."
	MsgReportGenerated        = "Report generated successfully."
	MsgOperationProblemFormat = "Something went wrong: %v\n"

	// metrics constants
	LoginAttemptsTotal        = "login_attempts_total"
	LoginAttemptsTotalHelp    = "Total number of login attempts submitted"
	LoginSuccessTotal         = "login_success_total"
	LoginSuccessTotalHelp     = "Total number of successful logins"
	LoginFailedTotal          = "login_failed_total"
	LoginFailedTotalHelp      = "Total number of failed login attempts"
	LoginRateLimitedTotal     = "login_rate_limited_total"
	LoginRateLimitedTotalHelp = "Total number of login attempts that were rate limited"
	UsersRegisteredTotal      = "users_registered_total"
	UsersRegisteredTotalHelp  = "Total number of users registered this session"
	TasksAddedTotal           = "tasks_added_total"
	TasksAddedTotalHelp       = "Total number of tasks added this session"
	TasksCompletedTotal       = "tasks_completed_total"
	TasksCompletedTotalHelp   = "Total number of tasks marked complete this session"
	TasksEditedTotal          = "tasks_edited_total"
	TasksEditedTotalHelp      = "Total number of task edits persisted this session"
	TasksDeletedTotal         = "tasks_deleted_total"
	TasksDeletedTotalHelp     = "Total number of tasks deleted this session"
	ReportsGeneratedTotal     = "reports_generated_total"
	ReportsGeneratedTotalHelp = "Total number of report generations this session"
	ReportDurationSeconds     = "report_duration_seconds"
	ReportDurationSecondsHelp = "Duration of report generation in seconds"
)
