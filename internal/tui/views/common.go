package views

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
