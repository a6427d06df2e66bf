package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Frontend(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(frontendPage))
}

const frontendPage = `<!DOCTYPE html>
<html>
<head>
    <title>House Price Prediction</title>
    <link href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;700&display=swap" rel="stylesheet">
    <style>
        body {
            font-family: 'Roboto', sans-serif;
            background: linear-gradient(135deg, #6a11cb 0%, #2575fc 100%);
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
        }
        .card {
            background: white;
            padding: 30px;
            border-radius: 15px;
            box-shadow: 0 4px 20px rgba(0,0,0,0.2);
            max-width: 400px;
            width: 100%;
        }
        h1 { color: #2575fc; text-align: center; }
        input, button {
            width: 100%;
            padding: 10px;
            margin: 8px 0;
            border-radius: 8px;
            border: 1px solid #ccc;
        }
        button {
            background: #2575fc;
            color: white;
            border: none;
            cursor: pointer;
            font-size: 1.1em;
        }
        button:hover { background: #1a5edc; }
        #result { margin-top: 10px; text-align: center; font-weight: bold; }
    </style>
</head>
<body>
    <div class="card">
        <h1>&#127968; Predict Price</h1>
        <form id="predictionForm">
            <input type="number" step="any" name="MedInc" placeholder="Median Income" required>
            <input type="number" step="any" name="HouseAge" placeholder="House Age" required>
            <input type="number" step="any" name="AveRooms" placeholder="Average Rooms" required>
            <input type="number" step="any" name="AveBedrms" placeholder="Average Bedrooms" required>
            <input type="number" step="any" name="AvePop" placeholder="Average Population" required>
            <button type="submit">Predict Price</button>
        </form>
        <div id="result"></div>
    </div>
    <script>
        document.getElementById("predictionForm").addEventListener("submit", async function(e) {
            e.preventDefault();
            const formData = new FormData(e.target);
            const data = Object.fromEntries(formData.entries());
            for (let key in data) data[key] = parseFloat(data[key]);

            const response = await fetch("/predict", {
                method: "POST",
                headers: { "Content-Type": "application/json" },
                body: JSON.stringify(data)
            });
            const result = await response.json();
            if (response.ok) {
                document.getElementById("result").textContent = "Predicted Price: $" + result.predicted_price.toFixed(2);
                document.getElementById("result").style.color = "green";
            } else {
                document.getElementById("result").textContent = "Error: " + JSON.stringify(result.detail);
                document.getElementById("result").style.color = "red";
            }
        });
    </script>
</body>
</html>
`
