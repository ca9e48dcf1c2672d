package models

import (
	"errors"
)

var (
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("the data you sent is not valid")
	ErrUnauthorized     = errors.New("you need to log in first")
)

// validationError is a user facing error that matches ErrValidation
// with errors.Is.
type validationError string

func (e validationError) Error() string {
	return string(e)
}

func (e validationError) Is(target error) bool {
	return target == ErrValidation
}

// Expense errors
var (
	ErrExpenseAmountNotPositive error = validationError("please enter a valid amount, it must be a positive number")
	ErrExpenseCategoryMissing   error = validationError("the category must be set")
	ErrExpenseDateMissing       error = validationError("the date must be set")
	ErrExpenseUserMissing       error = validationError("the expense must belong to a user")
)

// Budget errors
var (
	ErrBudgetCategoryMissing error = validationError("the category of a budget must be set")
	ErrBudgetAmountMissing   error = validationError("the amount of a budget must be set")
	ErrBudgetAmountNegative  error = validationError("the amount of a budget must not be negative")
	ErrBudgetPeriodInvalid   error = validationError("the period must be one of monthly, weekly or yearly")
)

// Session and preference errors
var (
	ErrEmailInvalid     error = validationError("the email address is not valid")
	ErrPasswordTooShort error = validationError("the password is too short, it needs at least 6 characters")
	ErrThemeInvalid     error = validationError("the theme must be light or dark")
)
