package command

const deploySigintQuestion = "Stopping a deploy can leave environments on different versions of the function. Are you sure you want to cancel? [yes/no]"
const deployStdinErrorMessage = "Couldn't read from Stdin, if you still want to stop the deploy send SIGTERM."
const deployAbortedNotice = "It is recommended that you run `ldp deploy` again to bring every environment to the same version."

const planTriggerNotice = "Triggers push, pull-request and manual dispatch all produce this plan."
