package sender

const msgHelp = `Commands:
  a-f or 1-6   choose an option
  s            submit the answer
  n            next question
  r            retry (after the answer is shown or the quiz is over)
  h            this help
  q            quit`

const msgSubmitHint = `Choose an option, then press s to submit.`

const msgSelected = `Selected %s. Press s to submit.`

const msgCorrect = `Correct!`

const msgWrong = `Wrong answer: %s) %s`

const msgTimeUp = `Time is up.`

const msgCorrectAnswer = `Correct answer: %s) %s`

const msgAdvanceHint = `Press n for the next question or r to retry.`

const msgAutoAdvance = `Moving on...`

const msgScore = `Your score: %d / %d`

const msgAccuracy = `Accuracy: %d%%`

const msgRetry = `Press r to retry or q to quit.`
