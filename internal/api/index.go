package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// indexHTML is the single-input query form. It posts to the query API
// and renders whatever answer comes back.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Shopify Product</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 40px auto; padding: 0 16px; }
input[type=text] { width: 70%; padding: 8px; }
button { padding: 8px 16px; }
#answer { margin-top: 24px; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>Shopify Product</h1>
<p>Hello! How may I be of assistance?</p>
<form id="query-form">
<input type="text" id="query" name="query" placeholder="Enter your query:" required>
<button type="submit">Submit</button>
</form>
<div id="answer"></div>
<script>
document.getElementById("query-form").addEventListener("submit", async function (e) {
	e.preventDefault();
	var answer = document.getElementById("answer");
	answer.textContent = "Thinking...";
	try {
		var resp = await fetch("/api/v1/query", {
			method: "POST",
			headers: {"Content-Type": "application/json"},
			body: JSON.stringify({query: document.getElementById("query").value})
		});
		var data = await resp.json();
		answer.textContent = data.answer || data.error || "No response.";
	} catch (err) {
		answer.textContent = "An unexpected error occurred. Please try again.";
	}
});
</script>
</body>
</html>`

func index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
